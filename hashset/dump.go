package hashset

import (
	"bufio"
	"fmt"
	"io"
)

// Dump writes the bucket layout to w, one line per bucket:
//
//	***Hash Table: Separate Chaining***
//	table_size = 7, current_size = 2
//	0: -
//	1: --->8--->1-
//	...
func (s *Set[K]) Dump(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "***Hash Table: Separate Chaining***")
	fmt.Fprintf(bw, "table_size = %d, current_size = %d\n", len(s.d.buckets), s.d.size)
	for i := range s.d.buckets {
		fmt.Fprintf(bw, "%d: ", i)
		for curr := s.d.buckets[i].head; curr != nil; curr = curr.next {
			fmt.Fprintf(bw, "--->%v", curr.key)
		}
		bw.WriteString("-\n")
	}
	return bw.Flush()
}
