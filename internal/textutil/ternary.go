package textutil

// Ternary picks between two values: yes when cond holds, otherwise no.
// Mostly used to pluralize report lines.
func Ternary[T any](cond bool, yes, no T) T {
	if cond {
		return yes
	}
	return no
}
