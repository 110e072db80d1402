package diaglog

import "strings"

// Category naming convention shared between the adapter and its callers.
// Function-scoped categories are "Function.<name>"; appending the user
// suffix ("Function.<name>.User") designates the function's end-user log
// stream, which is never forwarded to the diagnostic sink.
const (
	FunctionCategoryPrefix = "Function."
	HostCategoryPrefix     = "Host."
	WorkerCategoryPrefix   = "Worker."
	UserCategorySuffix     = ".User"
)

// Class partitions a category string by the naming convention.
type Class int

const (
	// ClassOther is any category outside the convention. Excluded.
	ClassOther Class = iota
	// ClassSystem is a host, worker or function system category. Eligible.
	ClassSystem
	// ClassUserFunction is a function's end-user log stream. Excluded.
	ClassUserFunction
)

// Classify derives the class of a category. Classification is stateless
// and re-derived from the string on every call.
func Classify(category string) Class {
	switch {
	case category == "":
		return ClassOther
	case strings.HasPrefix(category, FunctionCategoryPrefix):
		if strings.HasSuffix(category, UserCategorySuffix) {
			return ClassUserFunction
		}
		return ClassSystem
	case strings.HasPrefix(category, HostCategoryPrefix),
		strings.HasPrefix(category, WorkerCategoryPrefix):
		return ClassSystem
	default:
		return ClassOther
	}
}

// FunctionCategory builds the system category for a function.
func FunctionCategory(functionName string) string {
	return FunctionCategoryPrefix + functionName
}

// FunctionUserCategory builds the end-user log category for a function.
func FunctionUserCategory(functionName string) string {
	return FunctionCategoryPrefix + functionName + UserCategorySuffix
}

// FunctionName derives the function name from a function-scoped category.
// Non-function categories yield the empty string.
func FunctionName(category string) string {
	if !strings.HasPrefix(category, FunctionCategoryPrefix) {
		return ""
	}
	name := strings.TrimPrefix(category, FunctionCategoryPrefix)
	name = strings.TrimSuffix(name, UserCategorySuffix)
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[:i]
	}
	return name
}
