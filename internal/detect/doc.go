// Package detect classifies sensitive substrings in text.
//
// Five categories are recognized, always considered in the same order:
// email addresses, IPv4 dotted quads, version-4 UUIDs, JWT-shaped triples,
// and long high-entropy tokens. Each matcher returns byte spans into the
// input; the patterns are compiled once at package init and shared.
//
// [Scan] runs every matcher independently over the same text and is meant
// for diagnostics: an IPv4 address is also JWT-shaped, so categories can
// overlap here. The redact package applies the categories in order and
// resolves those overlaps.
package detect
