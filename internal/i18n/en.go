package i18n

// enMessages contains English translations
var enMessages = map[string]string{
	// Dispatch
	ErrUnrecognized: "Unrecognized instruction: %s",
	MsgDidYouMean:   " Did you mean '%s'?",
	ErrDataRequired: "Error: the instructions need a data file, but none was loaded. Load a .txt file before converting.",

	// Conditional chains
	ErrElseWithoutIf:    "Found 'sino' without a preceding 'si'.",
	ErrElseIfAfterElse:  "'sino si' cannot follow a final 'sino'.",
	ErrDuplicateElse:    "The 'si' block already has a 'sino'.",
	ErrInvalidCondition: "Could not understand the condition: %s",

	// Variables and expressions
	ErrMissingInputTarget: "An input was requested but no variable was named.",
	ErrInvalidExpression:  "Could not understand the expression: %s",
	ErrInvalidOperands:    "Could not understand the operands of the operation.",
	ErrUnknownVariable:    "Variable %s has not been declared.",
	ErrNameIsCollection:   "The name %s already belongs to a collection; the instruction was skipped.",

	// Collections
	ErrNoCollection:       "No collection is available for this instruction.",
	ErrIndexOutOfRange:    "Index %d is out of range for collection %s (size %d).",
	ErrArrayFull:          "Cannot add more elements to array %s.",
	ErrFixedRemove:        "Cannot remove elements from fixed-size array %s.",
	ErrUnknownArrayLength: "The size of array %s is unknown.",
	ErrArrayNeedsSize:     "An array needs a size; a vector was created instead.",
	ErrPairsMissing:       "The country and capital lists were not found. Create them before printing.",

	// Structs
	ErrStructFormat:       "Unrecognized struct format: %s",
	ErrStructNoFields:     "No valid fields were found in struct %s.",
	ErrStructNotFound:     "Struct not defined: %s",
	ErrFieldNotFound:      "Field not found in struct %[2]s: %[1]s",
	ErrNoStructCollection: "No collection was found for type %s.",

	// Functions
	ErrNestedFunction:        "Cannot define function %s while function %s is still open.",
	ErrReturnOutsideFunction: "Found 'retornar' outside of a function.",
	ErrUnclosedFunction:      "Function %s did not end with 'retornar'; it was closed automatically.",
	ErrFunctionNotFound:      "Function %s has not been defined.",

	// Data file
	ErrDataColumns:    "%d collections are needed for %[1]d data columns, but only %d were found.",
	ErrDataOverflow:   "The data file has %d values, but array %s only holds %d.",
	ErrDataNotNumeric: "Value '%s' is not numeric and will be loaded as 0 into collection %s.",
	ErrDataShortRow:   "Data row %d has fewer than %d columns and was skipped.",

	// CLI usage
	MsgUsage:          "Usage: instacode <command> [arguments]",
	MsgCommands:       "Commands:",
	MsgCmdConvert:     "  convert   Convert an instruction file to C++",
	MsgCmdCheck:       "  check     Check instructions without writing code",
	MsgCmdVersion:     "  version   Print version",
	MsgCmdHelp:        "  help      Show this help",
	MsgUseHelp:        "Use \"instacode <command> -h\" for more information about a command.",
	MsgUnknownCommand: "Unknown command: %s",
	MsgArguments:      "Arguments:",
	MsgOptions:        "Options:",

	// Convert command
	MsgConvertUsage:       "Usage: instacode convert [options] <input>",
	MsgConvertDescription: "Convert a file of Spanish instructions into a C++ program.",
	MsgConvertArgInput:    "  <input>     Instruction file (.txt)",
	MsgOptOutput:          "Output file (default: input with the configured extension)",
	MsgOptData:            "Auxiliary data file (CSV)",
	MsgOptVerbose:         "Show detailed output",
	MsgOptDump:            "Dump the symbol table when done",
	MsgOptStdout:          "Write the code to standard output",
	MsgConvertCompleted:   "Conversion completed: %s",

	// Check command
	MsgCheckUsage:       "Usage: instacode check [options] <input>",
	MsgCheckDescription: "Check an instruction file and report any issues.",
	MsgCheckArgInput:    "  <input>     Instruction file (.txt)",
	MsgCheckPassed:      "No issues: %d instructions checked",

	// Common errors
	ErrInputRequired:     "Error: input file is required",
	ErrCannotAccessInput: "cannot access input: %v",
	ErrCannotLoadConfig:  "cannot load config: %v",
	ErrCannotReadFile:    "cannot read file",
	ErrCannotWriteFile:   "cannot write file",
	ErrConversionFailed:  "conversion finished with %d issue(s)",

	// Info messages
	MsgUsingConfig: "Using config: %s",
	MsgNoConfig:    "No instacode.toml found, using defaults",
	MsgUsingEnv:    "Loaded environment from %s",
	MsgSession:     "Session: %s",
	MsgConverting:  "Converting: %s -> %s",
	MsgIssue:       "[%s] line %d: %s",
	MsgWarning:     "Warning: %s",
}
