package wordlist

import (
	"bufio"
	"bytes"
	"fmt"
	"path"
	"strings"
)

// FileFormat represents the kinds of files a source can be read from.
type FileFormat int

const (
	FormatUnknown   FileFormat = iota
	FormatText                 // One word per line
	FormatYAML                 // Mapping of category names to words or paths
	FormatBlacklist            // One excluded word per line
)

// BlacklistName is the file name whose words are removed from every list
// in its directory and below.
const BlacklistName = ".blacklist"

// FormatInfo contains metadata about a source file format.
type FormatInfo struct {
	Format      FileFormat
	Description string
	Extensions  []string
}

var supportedFormats = map[FileFormat]FormatInfo{
	FormatText: {
		Format:      FormatText,
		Description: "Plain text word list",
		Extensions:  []string{".txt"},
	},
	FormatYAML: {
		Format:      FormatYAML,
		Description: "YAML category mapping",
		Extensions:  []string{".yaml", ".yml"},
	},
	FormatBlacklist: {
		Format:      FormatBlacklist,
		Description: "Word blacklist",
		Extensions:  []string{BlacklistName},
	},
}

// DetectFileFormat infers the format of a file from its name. Other
// hidden files are FormatUnknown.
func DetectFileFormat(filename string) FileFormat {
	base := strings.ToLower(path.Base(strings.ReplaceAll(filename, `\`, "/")))
	if base == BlacklistName || strings.HasSuffix(base, BlacklistName) {
		return FormatBlacklist
	}
	if strings.HasPrefix(base, ".") {
		return FormatUnknown
	}
	ext := path.Ext(base)
	for format, info := range supportedFormats {
		for _, e := range info.Extensions {
			if ext == e {
				return format
			}
		}
	}
	return FormatUnknown
}

// GetFormatInfo returns information about a specific format.
func GetFormatInfo(format FileFormat) (FormatInfo, bool) {
	info, exists := supportedFormats[format]
	return info, exists
}

func (f FileFormat) String() string {
	if info, ok := supportedFormats[f]; ok {
		return info.Description
	}
	return fmt.Sprintf("unknown format %d", int(f))
}

// ParseLines extracts words from a word file: one per line, surrounding
// whitespace trimmed, blank lines and lines starting with ';' or '#'
// skipped.
func ParseLines(data []byte) []string {
	var words []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == ';' || line[0] == '#' {
			continue
		}
		words = append(words, line)
	}
	return words
}
