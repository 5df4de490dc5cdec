// Package codec decodes structure description files into the layout model.
// The format is chosen by file extension: JSON decodes straight into cty
// values, while YAML and TOML decode into native Go values first and are
// then converted. All formats produce the same tree for equivalent input.
package codec
