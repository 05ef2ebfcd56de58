// Package identity generates the installation identifiers of the target
// application and writes them into its settings, storage and machine-id
// files.
//
// Identifiers come from math/rand. They exist to make an installation look
// new to the application and carry no security guarantee; uniqueness across
// runs is best effort.
package identity
