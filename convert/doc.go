// Package convert implements the number notation converters: Roman numerals
// in the canonical subtractive form (I..MMMCMXCIX) and positional notation in
// any base from 2 to 36.
package convert
