// Package domain defines the core business entities for Tubedraft.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - DescriptionRequest: A caller's description of the video to write for
//   - ContentStyle: The fixed set of supported video styles
//   - Analysis: SEO metrics computed over a composed description
//   - Result: The full compose response (document, sections, analysis)
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
