// Package linkgroup merges several source trees into one target directory as
// symbolic links.
//
// A LinkGroup owns one resolved target and the sources feeding it. Sources
// are added a directory at a time; a directory whose files collide with files
// already in the group is rejected whole, so every relative path in the
// target maps to exactly one source file.
//
// Link inspects the entire target before creating anything and refuses to
// touch a group with conflicts. Unlink only removes links it can verify point
// at its own sources, then prunes directories left empty, bounded by the
// target.
//
// Example:
//
//	g := linkgroup.New("/home/me/.config")
//	if err := g.AddSource("/dotfiles/{all}base"); err != nil {
//		return err
//	}
//	if err := g.Link(); err != nil {
//		paths := errors.ConflictPaths(err)
//		...
//	}
package linkgroup
