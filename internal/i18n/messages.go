package i18n

// Message keys for translation diagnostics
const (
	// Dispatch
	ErrUnrecognized = "transpiler.unrecognized"   // args: line
	MsgDidYouMean   = "transpiler.did_you_mean"   // args: suggestion
	ErrDataRequired = "transpiler.data_required"

	// Conditional chains
	ErrElseWithoutIf    = "transpiler.else_without_if"
	ErrElseIfAfterElse  = "transpiler.else_if_after_else"
	ErrDuplicateElse    = "transpiler.duplicate_else"
	ErrInvalidCondition = "transpiler.invalid_condition" // args: condition

	// Variables and expressions
	ErrMissingInputTarget = "transpiler.missing_input_target"
	ErrInvalidExpression  = "transpiler.invalid_expression" // args: expression
	ErrInvalidOperands    = "transpiler.invalid_operands"
	ErrUnknownVariable    = "transpiler.unknown_variable"   // args: name
	ErrNameIsCollection   = "transpiler.name_is_collection" // args: name

	// Collections
	ErrNoCollection       = "transpiler.no_collection"
	ErrIndexOutOfRange    = "transpiler.index_out_of_range"    // args: index, collection, length
	ErrArrayFull          = "transpiler.array_full"            // args: collection
	ErrFixedRemove        = "transpiler.fixed_remove"          // args: collection
	ErrUnknownArrayLength = "transpiler.unknown_array_length"  // args: collection
	ErrArrayNeedsSize     = "transpiler.array_needs_size"
	ErrPairsMissing       = "transpiler.pairs_missing"

	// Structs
	ErrStructFormat       = "transpiler.struct_format"        // args: instruction
	ErrStructNoFields     = "transpiler.struct_no_fields"     // args: struct
	ErrStructNotFound     = "transpiler.struct_not_found"     // args: struct
	ErrFieldNotFound      = "transpiler.field_not_found"      // args: field, struct
	ErrNoStructCollection = "transpiler.no_struct_collection" // args: struct

	// Functions
	ErrNestedFunction        = "transpiler.nested_function"   // args: name, open
	ErrReturnOutsideFunction = "transpiler.return_outside_function"
	ErrUnclosedFunction      = "transpiler.unclosed_function" // args: name
	ErrFunctionNotFound      = "transpiler.function_not_found" // args: name

	// Data file
	ErrDataColumns    = "transpiler.data_columns"     // args: columns, collections
	ErrDataOverflow   = "transpiler.data_overflow"    // args: values, collection, length
	ErrDataNotNumeric = "transpiler.data_not_numeric" // args: value, collection
	ErrDataShortRow   = "transpiler.data_short_row"   // args: row, columns
)

// Message keys for CLI
const (
	// Usage and help
	MsgUsage          = "cli.usage"
	MsgCommands       = "cli.commands"
	MsgCmdConvert     = "cli.cmd_convert"
	MsgCmdCheck       = "cli.cmd_check"
	MsgCmdVersion     = "cli.cmd_version"
	MsgCmdHelp        = "cli.cmd_help"
	MsgUseHelp        = "cli.use_help"
	MsgUnknownCommand = "cli.unknown_command" // args: command
	MsgArguments      = "cli.arguments"
	MsgOptions        = "cli.options"

	// Convert command
	MsgConvertUsage       = "cli.convert_usage"
	MsgConvertDescription = "cli.convert_description"
	MsgConvertArgInput    = "cli.convert_arg_input"
	MsgOptOutput          = "cli.opt_output"
	MsgOptData            = "cli.opt_data"
	MsgOptVerbose         = "cli.opt_verbose"
	MsgOptDump            = "cli.opt_dump"
	MsgOptStdout          = "cli.opt_stdout"
	MsgConvertCompleted   = "cli.convert_completed" // args: output

	// Check command
	MsgCheckUsage       = "cli.check_usage"
	MsgCheckDescription = "cli.check_description"
	MsgCheckArgInput    = "cli.check_arg_input"
	MsgCheckPassed      = "cli.check_passed" // args: lines

	// Common errors
	ErrInputRequired     = "cli.input_required"
	ErrCannotAccessInput = "cli.cannot_access_input" // args: error
	ErrCannotLoadConfig  = "cli.cannot_load_config"  // args: error
	ErrCannotReadFile    = "cli.cannot_read_file"
	ErrCannotWriteFile   = "cli.cannot_write_file"
	ErrConversionFailed  = "cli.conversion_failed" // args: count

	// Info messages
	MsgUsingConfig = "cli.using_config" // args: configPath
	MsgNoConfig    = "cli.no_config"
	MsgUsingEnv    = "cli.using_env" // args: path
	MsgSession     = "cli.session"   // args: id
	MsgConverting  = "cli.converting" // args: input, output
	MsgIssue       = "cli.issue"      // args: kind, line, message
	MsgWarning     = "cli.warning"    // args: message
)
