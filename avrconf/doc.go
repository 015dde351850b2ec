// Package avrconf reads the part definitions of an avrdude.conf file.
//
// Only a small set of part fields is retained (see [PartFields] and
// [MemoryFields]); everything else, including every programmer entry, is
// checked for syntax and discarded.  Memory regions named "flash" and
// "eeprom" are flattened into their part with the region name as a key
// prefix, so "memory "flash" size = 1024; ;" becomes the field "flash.size".
//
// Parts form a single inheritance chain through their "parent" field.
// [ConfigFile.Export] returns a standalone copy of a part with every
// ancestor merged in, nearest ancestor first, never replacing a field that is
// already present.
//
// Numbers are kept as canonical text (see the token package) so that
// "0x1e 0x95 0x0f" is stored as "0x1e950f" and "~0" stays "~0".
package avrconf
