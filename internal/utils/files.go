package utils

import (
	"bufio"
	"os"
)

func FileLineByLine(file string) ([]string, error) {
	readFile, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer readFile.Close()

	fileScanner := bufio.NewScanner(readFile)
	fileScanner.Split(bufio.ScanLines)

	var s []string
	for fileScanner.Scan() {
		s = append(s, fileScanner.Text())
	}
	if err := fileScanner.Err(); err != nil {
		return nil, err
	}

	return s, nil
}
