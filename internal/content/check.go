package content

import "fmt"

// Duplicate is a title used more than once within one list.
type Duplicate struct {
	List  string
	Key   string
	Count int
}

func (d Duplicate) String() string {
	return fmt.Sprintf("%s: %q appears %d times", d.List, d.Key, d.Count)
}

// Duplicates reports repeated titles. Rendering tolerates them; this is for
// authors who want to keep titles usable as keys.
func (s *Site) Duplicates() []Duplicate {
	var out []Duplicate
	out = append(out, duplicates("projects", s.Projects)...)
	out = append(out, duplicates("posts", s.Posts)...)
	out = append(out, duplicates("experience", s.Experience)...)
	out = append(out, duplicates("news", s.News)...)
	return out
}

func duplicates[T Titled](list string, items []T) []Duplicate {
	counts := make(map[string]int, len(items))
	var order []string
	for _, it := range items {
		k := it.Key()
		if counts[k] == 0 {
			order = append(order, k)
		}
		counts[k]++
	}

	var out []Duplicate
	for _, k := range order {
		if counts[k] > 1 {
			out = append(out, Duplicate{List: list, Key: k, Count: counts[k]})
		}
	}
	return out
}
