/*
Package ini reads and writes INI configuration files while keeping their
comments, quoting and escape sequences intact.

A document is made of an unnamed default section, holding the keys that
appear before the first header, followed by named sections in file order.
Section and key names are compared case-insensitively but keep the casing
they were written with.

	; database settings
	[database]
	host = localhost   ; inline comment
	password = "p;ss\"word"

The package offers two workflows.

1. Document Manipulation

Parse returns an *ast.Document that can be inspected and edited through
its ordered, case-insensitive containers, then written back with Marshal.
Comments stay attached to the section or property they precede.

	doc, err := ini.Parse(data)
	if err != nil {
		// handle error
	}
	if _, err := doc.Set("database", "port", "5432"); err != nil {
		// handle error
	}
	out, err := ini.Marshal(doc)

Values are quoted on output when the property was quoted in the input or
when the value could not be read back unquoted, for example because it is
empty, has surrounding whitespace or contains a comment character.

2. Struct Mapping

Unmarshal and MarshalStruct map documents onto tagged structs. Fields of
struct type become sections, all other fields are keys of the default
section.

	type Config struct {
		Debug    bool `ini:"debug"`
		Database struct {
			Host string        `ini:"host"`
			Wait time.Duration `ini:"wait,omitempty"`
		} `ini:"database"`
	}

	var cfg Config
	err := ini.Unmarshal(data, &cfg)

# Errors

By default parsing stops at the first problem and returns a *ParseError
carrying the line number, the raw line and a reason. With CollectErrors the
parser skips offending lines and records each problem in
Document.ParsingErrors instead, up to MaxErrors. Duplicate sections and keys
are resolved by the DuplicateSections and DuplicateKeys policies, and the
Limits option bounds the size of accepted input.

# Files and Encodings

LoadFile and SaveFile read and write files. SaveFile replaces the target
atomically. The Encoding, EncodingLabel and DetectEncoding options handle
files that are not UTF-8.
*/
package ini
