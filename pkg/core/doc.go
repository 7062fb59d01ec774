// Package core drives clink's link and unlink runs.
//
// A run starts from the working directory. Every subdirectory whose name
// starts with a slug marker such as "{mac,linux}nvim" is matched against the
// feature registry; the first enabled feature in registry order decides the
// target the directory is deployed to. Directories sharing a target are
// merged into one link group, and each group is then linked or unlinked.
//
//	~/dotfiles/
//	  {all}base/.gitconfig      -> ~/.gitconfig
//	  {mac,linux}config/nvim/   -> ~/.config/nvim/...
//	  notes/                    (no marker, ignored)
//
// Entries that are not directories, including symlinks to directories, are
// never considered.
package core
