// Package sanitizer removes or reports executable content in untrusted SVG
// documents and normalizes attribute naming for consumers that expect
// camelCase names.
//
// Three entry points are provided:
//
//   - Sanitize destructively strips script elements, event-handler
//     attributes, dangerous elements (iframe, object, embed, applet,
//     foreignObject, base, meta, link) and dangerous URL references
//     (javascript:, vbscript:, inline HTML/application data URIs) and
//     reports which categories fired.
//
//   - Audit scans without mutating and returns one warning per dangerous
//     element category, per distinct event-handler attribute name, and per
//     dangerous URL scheme found.
//
//   - CamelCaseAttributes rewrites hyphen-separated attribute names
//     (fill-opacity) into camelCase (fillOpacity), leaving values untouched.
//
// The implementation is deliberately pattern-based rather than a full XML
// parser: inputs are expected to be well-formed vector graphics and the goal
// is removal of known-dangerous constructs, not semantic validation. Payloads
// obfuscated across tag boundaries (for example an attribute name split by
// injected whitespace) can evade the patterns; callers needing stronger
// guarantees should replace the implementation behind these functions with a
// tokenizer-based one, which the contracts permit without API changes.
package sanitizer
