package constants

const (
	ResultsSuffix = "_results.txt"

	TmpDirectoryName = "tmp"
)
