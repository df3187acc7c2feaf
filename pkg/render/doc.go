// Package render turns railway networks into station diagrams.
//
// [ToDOT] produces a Graphviz DOT document with nodes colored and shaped by
// role (conflict zones red octagons, signals green diamonds), and
// [RenderSVG] / [RenderPNG] rasterize it through the embedded Graphviz
// engine. Node positions stored on the network are not used for layout;
// Graphviz computes its own, which keeps diagrams legible for imported
// stations with generated or missing coordinates.
package render
