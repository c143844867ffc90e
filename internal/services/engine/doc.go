// Package engine recognises intergalactic sentences and answers them.
//
// Four sentence forms are tried in a fixed order, first match wins:
//
//   - <word> is <digit>                          bind a word to a Roman digit
//   - <words> <Item> is <n> credits              record the unit price of an item
//   - how much is <words>?                       decode a numeral
//   - how many credits is <words> <Item>?        price a quantity of an item
//
// # Implementation
//
// Each form is a compiled pattern paired with a handler. Handlers validate
// everything they need before touching the dictionary or the price book, so a
// failed query never leaves partial state behind.
package engine
