package main

func keypad() [][]string {
	return [][]string{
		{".,!?1", "abc2", "def3", "A"},
		{"ghi4", "jkl5", "mno6", "B"},
		{"pqrs7", "tuv8", "wxyz9", "C"},
		{"*", " 0", "#", "D"},
	}
}

func digits() [][]int {
	return [][]int{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	}
}

func denseDigits() [][]float32 {
	rows := digits()
	dense := make([][]float32, len(rows))
	for i, row := range rows {
		dense[i] = make([]float32, len(row))
		for j, v := range row {
			dense[i][j] = float32(v)
		}
	}
	return dense
}
