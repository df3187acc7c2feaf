// Package pkg provides the core libraries for Railsignal station analysis.
//
// # Overview
//
// Railsignal analyzes railway station track layouts as directed graphs. It
// finds conflict zones (nodes where two or more tracks converge), places
// protective signals at a configured distance before each zone, and renders
// the annotated layout. The pkg directory is organized into five main areas:
//
//  1. [network] - Domain logic (station graph, statistics, conflict analysis)
//  2. [railml] / [io] - Input and interchange (railML import, JSON export)
//  3. [render] - Visualization (DOT generation, SVG/PNG via graphviz)
//  4. [pipeline] - Orchestration (analyze → render with caching)
//  5. [cache] / [errors] / [observability] - Infrastructure
//
// # Architecture
//
// The typical data flow through Railsignal:
//
//	railML document / JSON station file
//	         ↓
//	    [railml] or [io] package (build the station graph)
//	         ↓
//	    [network/analysis] package (classify zones, place signals)
//	         ↓
//	    [render] package (DOT, SVG, PNG output)
//
// # Quick Start
//
//	net, err := railml.ImportFile("station.railml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	analysis.PlaceSignals(net, analysis.DefaultSignalDistance)
//	fmt.Println(net.Summary())
package pkg
