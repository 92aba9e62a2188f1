// Package theme derives new icon stylesheet themes from the stock theme of an
// Eclipse CSS tree. It clones each group's styles/stock directory, rewrites
// @import "stock" declarations in the copied .scss files and writes a renamed
// copy of the master stylesheet.
package theme
