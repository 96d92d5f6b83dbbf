package frcmp

import _ "embed"

// Stylesheet is the bundled design system subset the vocabulary in the
// fr package was generated from. Hosts can serve it directly; hosts
// that deploy their own build of the stylesheet should verify it with
// fr.MustVerifyStylesheet at startup instead.
//
//go:embed assets/dsfr.min.css
var Stylesheet []byte
