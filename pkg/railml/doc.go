// Package railml imports railway infrastructure from railML interchange
// documents into a [network.Network].
//
// railML is the international XML standard for railway data exchange. The
// importer is deliberately tolerant: it accepts both railML 2.x and 3.x
// element vocabularies, ignores namespaces, and degrades gracefully when
// optional attributes (positions, lengths) are missing. Connections that
// reference elements absent from the document are skipped rather than
// failing the whole import, matching the partial-completion posture of the
// analysis pipeline.
//
// [network.Network]: github.com/railkit/railsignal/pkg/network
package railml
