package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0

	// Разбор исходника (tree-sitter)
	ParseInfo        Code = 1000
	ParseSyntaxError Code = 1001

	// Трансляция
	TranslateInfo          Code = 2000
	StructuralPrecondition Code = 2001
	UnsupportedConstruct   Code = 2002

	// Нормализация отступов
	IndentInfo                Code = 3000
	MalformedLiteralOrComment Code = 3001

	// Ввод-вывод
	IOLoadFile        Code = 4001
	IOWriteFile       Code = 4002
	IOOutputCollision Code = 4003

	// Наблюдаемость
	ObsInfo    Code = 6000
	ObsTimings Code = 6001
)

var (
	codeDescription = map[Code]string{
		UnknownCode:               "Unknown error",
		ParseInfo:                 "Parser information",
		ParseSyntaxError:          "Source does not parse",
		TranslateInfo:             "Translation information",
		StructuralPrecondition:    "Compilation unit has no namespace",
		UnsupportedConstruct:      "Construct has no Swift equivalent",
		IndentInfo:                "Indentation information",
		MalformedLiteralOrComment: "Unterminated string literal or comment",
		IOLoadFile:                "I/O load file error",
		IOWriteFile:               "I/O write file error",
		IOOutputCollision:         "Several inputs map to one output path",
		ObsInfo:                   "Observability information",
		ObsTimings:                "Pipeline timings",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("PAR%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("TRN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("IND%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("OBS%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
