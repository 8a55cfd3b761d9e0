// Package config holds app-wide engine settings unmarshalled from
// Viper (see: /cmd/bioseq).
//
// Settings arrive from a bioseq.yaml file and/or command-line flags
// bound by the CLI; Load applies defaults first so a bare environment
// still yields a working configuration.
//
// Errors:
//
//   - ErrInvalidValue: a setting is outside its documented range.
//   - ErrUnknownEncoding: the quality encoding name is not recognized.
package config
