// Package encode renders documents.
//
// The flat format is a diagnostic form and is not meant to be read back:
// every leaf is written as "key=value" on its own line, and every object is
// introduced by a banner comment naming its key, followed by its own
// fields and a blank line.
//
//	##############
//	#### m328p ####
//	##############
//	id=m328p
//	desc=ATmega328P
//	flash.size=32768
//
// YAML and JSON keep key order; numbers are written as their canonical text.
package encode
