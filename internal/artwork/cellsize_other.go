//go:build !unix

package artwork

func cellSize() (w, h int) { return 8, 16 }
