// Package render turns a composed data tree into presentation output: an
// evaluated HCL template, JSON, or YAML.
//
// Templates see the tree as the variable `data`. Every group has one
// attribute per child plus `__collection`, a tuple of its children in
// first-appearance order:
//
//	%{ for post in data.posts.__collection ~}
//	${upper(post.title)}
//	%{ endfor ~}
package render
