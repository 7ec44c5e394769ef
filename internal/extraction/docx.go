package extraction

import (
	"archive/zip"
	"encoding/xml"
	"io"
	"strings"
)

// extractDocx pulls the text runs out of word/document.xml inside the
// DOCX zip container, inserting a newline at each paragraph boundary.
func extractDocx(path string) (string, error) {
	zipReader, err := zip.OpenReader(path)
	if err != nil {
		return "", &FileError{Path: path, Message: "failed to open DOCX container", Cause: err}
	}
	defer func() { _ = zipReader.Close() }()

	for _, file := range zipReader.File {
		if file.Name != "word/document.xml" {
			continue
		}
		xmlFile, err := file.Open()
		if err != nil {
			return "", &FileError{Path: path, Message: "failed to open document.xml", Cause: err}
		}
		defer func() { _ = xmlFile.Close() }()

		text, err := decodeDocumentXML(xmlFile)
		if err != nil {
			return "", &FileError{Path: path, Message: "failed to decode document.xml", Cause: err}
		}
		return text, nil
	}

	return "", &FileError{Path: path, Message: "document.xml not found in DOCX container"}
}

func decodeDocumentXML(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)
	var builder strings.Builder
	inTextRun := false

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch el := token.(type) {
		case xml.StartElement:
			if el.Name.Local == "t" {
				inTextRun = true
			}
		case xml.EndElement:
			switch el.Name.Local {
			case "t":
				inTextRun = false
			case "p":
				builder.WriteString("\n")
			}
		case xml.CharData:
			if inTextRun {
				builder.Write(el)
			}
		}
	}

	return strings.TrimSpace(builder.String()), nil
}
