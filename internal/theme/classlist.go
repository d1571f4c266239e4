package theme

import "strings"

// ClassList is an ordered set of CSS class names, rendered onto the <html>
// element of every page.
type ClassList struct {
	names []string
}

// NewClassList returns a list holding names, duplicates dropped.
func NewClassList(names ...string) *ClassList {
	l := &ClassList{}
	for _, n := range names {
		l.Add(n)
	}
	return l
}

// Add inserts name if absent.
func (l *ClassList) Add(name string) {
	if name == "" || l.Has(name) {
		return
	}
	l.names = append(l.names, name)
}

// Remove deletes name if present.
func (l *ClassList) Remove(name string) {
	for i, n := range l.names {
		if n == name {
			l.names = append(l.names[:i], l.names[i+1:]...)
			return
		}
	}
}

// Has reports whether name is in the list.
func (l *ClassList) Has(name string) bool {
	for _, n := range l.names {
		if n == name {
			return true
		}
	}
	return false
}

// String renders the list as a class attribute value.
func (l *ClassList) String() string {
	return strings.Join(l.names, " ")
}
