// Package services implements the driving port interfaces.
// Services contain the core business logic: the description composition
// pipeline (keyword extraction, section generation, composition) and
// the SEO analysis rubric.
//
// Services are pure Go with no CGO or external dependencies. Every
// pipeline stage is a pure function of its inputs, so Compose is safe
// to call from any number of goroutines.
package services
