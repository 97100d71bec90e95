package grammar

import (
	"regexp"

	m "github.com/mouse-blink/knave/internal/model"
)

var pythonBuiltinFunctions = []string{
	"abs", "all", "any", "ascii", "bin", "bool", "breakpoint", "bytearray", "bytes",
	"callable", "chr", "classmethod", "compile", "complex", "delattr", "dict", "dir",
	"divmod", "enumerate", "eval", "exec", "filter", "float", "format", "frozenset",
	"getattr", "globals", "hasattr", "hash", "help", "hex", "id", "input", "int",
	"isinstance", "issubclass", "iter", "len", "list", "locals", "map", "max",
	"memoryview", "min", "next", "object", "oct", "open", "ord", "pow", "print",
	"property", "range", "repr", "reversed", "round", "set", "setattr", "slice",
	"sorted", "staticmethod", "str", "sum", "super", "tuple", "type", "vars", "zip",
	"__import__", "aiter", "anext",
}

var pythonKeywords = []string{
	"False", "None", "True", "and", "as", "assert", "async", "await", "break",
	"class", "continue", "def", "del", "elif", "else", "except", "finally",
	"for", "from", "global", "if", "import", "in", "is", "lambda", "nonlocal",
	"not", "or", "pass", "raise", "return", "try", "while", "with", "yield",
	"match", "case", "self", "cls",
}

var pythonExceptions = []string{
	"ArithmeticError", "AssertionError", "AttributeError", "BaseException", "BlockingIOError",
	"BrokenPipeError", "BufferError", "BytesWarning", "ChildProcessError", "ConnectionAbortedError",
	"ConnectionError", "ConnectionRefusedError", "ConnectionResetError", "DeprecationWarning",
	"EOFError", "Ellipsis", "EnvironmentError", "Exception", "FileExistsError",
	"FileNotFoundError", "FloatingPointError", "FutureWarning", "GeneratorExit",
	"IOError", "ImportError", "ImportWarning", "IndentationError", "IndexError",
	"InterruptedError", "IsADirectoryError", "KeyError", "KeyboardInterrupt",
	"LookupError", "MemoryError", "ModuleNotFoundError", "NameError", "NotADirectoryError",
	"NotImplemented", "NotImplementedError", "OSError", "OverflowError", "PendingDeprecationWarning",
	"PermissionError", "ProcessLookupError", "RecursionError", "ReferenceError",
	"ResourceWarning", "RuntimeError", "RuntimeWarning", "StopAsyncIteration",
	"StopIteration", "SyntaxError", "SyntaxWarning", "SystemError", "SystemExit",
	"TabError", "TimeoutError", "TypeError", "UnboundLocalError", "UnicodeDecodeError",
	"UnicodeEncodeError", "UnicodeError", "UnicodeTranslateError", "UnicodeWarning",
	"UserWarning", "ValueError", "Warning", "ZeroDivisionError",
}

var pythonLibraryFragments = []string{
	"os", "sys", "json", "math", "random", "time", "datetime", "re", "collections",
	"itertools", "functools", "operator", "pathlib", "urllib", "http", "socket",
	"threading", "multiprocessing", "subprocess", "pickle", "csv", "xml", "html",
	"numpy", "np", "pandas", "pd", "matplotlib", "plt", "scipy", "sklearn",
	"torch", "tf", "cv2", "pil", "requests", "flask", "django", "fastapi",
}

func python() *Grammar {
	return &Grammar{
		ID:           m.LanguagePython,
		Name:         "Python",
		Extensions:   []string{".py", ".pyw", ".pyi"},
		LineComment:  "#",
		Quotes:       `'"`,
		TripleQuotes: []string{`"""`, `'''`},
		Escape:       '\\',
		StringPrefixes: []string{
			"r", "u", "b", "f", "br", "rb", "fr", "rf",
		},
		FoldPrefixes: true,
		Keywords:     NewKeywordSet(pythonBuiltinFunctions, pythonKeywords, pythonExceptions),
		Fragments:    pythonLibraryFragments,
		FragmentMode: FragmentContains,
		Reserved: []*regexp.Regexp{
			regexp.MustCompile(`^__.*__$`),
			regexp.MustCompile(`^_[A-Z]`),
			regexp.MustCompile(`^[A-Z][A-Z_]+$`),
		},
		Receivers: []string{"self", "cls"},
	}
}
