// Package render writes discovered pages to the output directory. Renderers
// only read the draft marker set by the draft stage: drafted pages get a
// lightweight placeholder (HTML) or draft frontmatter (Hugo) instead of a
// full rendering.
package render
