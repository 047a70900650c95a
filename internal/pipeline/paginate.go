package pipeline

// Page is the active slice of the derived sequence. Offset and Len are in
// dataset-space rows; Num is zero-based, Count the total number of pages.
// A size of zero disables pagination: the page is the whole sequence.
type Page struct {
	Offset int
	Len    int
	Num    int
	Count  int
}

func paginate(total, size, num int) Page {
	if size <= 0 {
		return Page{Offset: 0, Len: total, Num: 0, Count: 1}
	}
	count := (total + size - 1) / size
	if count < 1 {
		count = 1
	}
	if num < 0 {
		num = 0
	}
	if num >= count {
		num = count - 1
	}
	offset := num * size
	length := total - offset
	if length > size {
		length = size
	}
	if length < 0 {
		length = 0
	}
	return Page{Offset: offset, Len: length, Num: num, Count: count}
}
