package grammar

import (
	"regexp"

	m "github.com/mouse-blink/knave/internal/model"
)

var cKeywords = []string{
	"auto", "break", "case", "char", "const", "continue", "default", "do",
	"double", "else", "enum", "extern", "float", "for", "goto", "if",
	"inline", "int", "long", "register", "restrict", "return", "short",
	"signed", "sizeof", "static", "struct", "switch", "typedef", "union",
	"unsigned", "void", "volatile", "while", "_Bool", "_Complex", "_Imaginary",
	"_Alignas", "_Alignof", "_Atomic", "_Static_assert", "_Noreturn",
	"_Thread_local", "_Generic", "main", "bool", "true", "false",
}

var cLibraryFunctions = []string{
	"printf", "scanf", "puts", "gets", "putchar", "getchar", "fopen", "fclose",
	"fread", "fwrite", "fprintf", "fscanf", "fgets", "fputs", "fgetc", "fputc",
	"malloc", "calloc", "realloc", "free", "strlen", "strcpy", "strncpy",
	"strcat", "strncat", "strcmp", "strncmp", "strchr", "strrchr", "strstr",
	"strtok", "memcpy", "memmove", "memset", "memcmp", "atoi", "atof", "atol",
	"strtol", "strtod", "abs", "labs", "div", "ldiv", "rand", "srand",
	"exit", "abort", "atexit", "system", "getenv", "qsort", "bsearch",
	"sin", "cos", "tan", "asin", "acos", "atan", "atan2", "sinh", "cosh", "tanh",
	"exp", "log", "log10", "pow", "sqrt", "ceil", "floor", "fabs", "ldexp",
	"frexp", "modf", "fmod", "time", "clock", "difftime", "mktime",
	"asctime", "ctime", "gmtime", "localtime", "strftime", "isalnum", "isalpha",
	"iscntrl", "isdigit", "isgraph", "islower", "isprint", "ispunct", "isspace",
	"isupper", "isxdigit", "tolower", "toupper", "setjmp", "longjmp",
	"snprintf", "sprintf", "perror", "errno", "assert", "va_start", "va_end", "va_arg",
}

var cLibraryTypes = []string{
	"size_t", "ptrdiff_t", "wchar_t", "FILE", "fpos_t", "clock_t", "time_t",
	"va_list", "jmp_buf", "sig_atomic_t", "div_t", "ldiv_t",
	"int8_t", "int16_t", "int32_t", "int64_t", "uint8_t", "uint16_t", "uint32_t", "uint64_t",
	"intptr_t", "uintptr_t", "ssize_t",
}

var cConstants = []string{
	"NULL", "EOF", "SEEK_SET", "SEEK_CUR", "SEEK_END", "FILENAME_MAX",
	"FOPEN_MAX", "RAND_MAX", "EXIT_SUCCESS", "EXIT_FAILURE", "CLOCKS_PER_SEC",
	"include", "define", "ifdef", "ifndef", "endif", "pragma", "undef", "elif",
}

var cLibraryPrefixes = []string{
	"std", "str", "mem", "io", "file", "printf", "scanf", "get", "put",
	"is", "to", "pthread", "win32", "posix",
}

func c() *Grammar {
	return &Grammar{
		ID:             m.LanguageC,
		Name:           "C",
		Extensions:     []string{".c", ".h"},
		LineComment:    "//",
		BlockOpen:      "/*",
		BlockClose:     "*/",
		Directives:     []string{"#include", "#import"},
		Quotes:         `'"`,
		Escape:         '\\',
		StringPrefixes: []string{"L", "u", "U", "u8"},
		Keywords:       NewKeywordSet(cKeywords, cLibraryFunctions, cLibraryTypes, cConstants),
		Fragments:      cLibraryPrefixes,
		FragmentMode:   FragmentPrefix,
		Reserved: []*regexp.Regexp{
			regexp.MustCompile(`^_[A-Z]`),
			regexp.MustCompile(`^[A-Z][A-Z_]+$`),
			regexp.MustCompile(`^__.*__$`),
			regexp.MustCompile(`^_[a-z]`),
		},
	}
}
