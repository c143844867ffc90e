// Package domain defines the data types, contracts and error taxonomy shared
// by the interpreter. It contains plain types and interfaces only.
package domain
