package i18n

// esMessages contains Spanish translations
var esMessages = map[string]string{
	// Dispatch
	ErrUnrecognized: "Instrucción no reconocida: %s",
	MsgDidYouMean:   " ¿Quiso decir '%s'?",
	ErrDataRequired: "Error: Las instrucciones requieren un archivo de datos, pero no se ha cargado ninguno. Cargue un archivo .txt antes de convertir.",

	// Conditional chains
	ErrElseWithoutIf:    "Se encontró un 'sino' sin un 'si' previo.",
	ErrElseIfAfterElse:  "No se puede usar 'sino si' después de un 'sino' final.",
	ErrDuplicateElse:    "El bloque 'si' ya tenía un 'sino' asociado.",
	ErrInvalidCondition: "No se pudo interpretar la condición: %s",

	// Variables and expressions
	ErrMissingInputTarget: "Se solicitó ingresar un valor, pero no se indicó la variable.",
	ErrInvalidExpression:  "No se pudo interpretar la expresión: %s",
	ErrInvalidOperands:    "No se pudieron interpretar los operandos de la operación.",
	ErrUnknownVariable:    "La variable %s no ha sido declarada.",
	ErrNameIsCollection:   "El nombre %s ya pertenece a una colección; la instrucción se omitió.",

	// Collections
	ErrNoCollection:       "No se encontró ninguna colección disponible para esta instrucción.",
	ErrIndexOutOfRange:    "El índice %d está fuera de rango para la colección %s (tamaño %d).",
	ErrArrayFull:          "No se pueden agregar elementos adicionales al arreglo %s.",
	ErrFixedRemove:        "No se pueden eliminar elementos en el arreglo de tamaño fijo %s.",
	ErrUnknownArrayLength: "No se conoce el tamaño del arreglo %s.",
	ErrArrayNeedsSize:     "Un arreglo necesita un tamaño; se creó un vector en su lugar.",
	ErrPairsMissing:       "No se encontraron las listas de países y capitales. Cree las listas antes de imprimir.",

	// Structs
	ErrStructFormat:       "Formato de estructura no reconocido: %s",
	ErrStructNoFields:     "No se encontraron campos válidos en la estructura %s.",
	ErrStructNotFound:     "Estructura no definida: %s",
	ErrFieldNotFound:      "Campo no encontrado en la estructura %[2]s: %[1]s",
	ErrNoStructCollection: "No se encontró una colección para el tipo %s.",

	// Functions
	ErrNestedFunction:        "No se puede definir la función %s mientras la función %s sigue abierta.",
	ErrReturnOutsideFunction: "Se encontró 'retornar' fuera de una función.",
	ErrUnclosedFunction:      "La función %s no terminó con 'retornar'; se cerró automáticamente.",
	ErrFunctionNotFound:      "La función %s no ha sido definida.",

	// Data file
	ErrDataColumns:    "Se necesitan %d colecciones para los datos de %[1]d columnas, pero solo se encontraron %d.",
	ErrDataOverflow:   "El archivo de datos tiene %d valores, pero el arreglo %s solo admite %d.",
	ErrDataNotNumeric: "El valor '%s' no es numérico y se cargará como 0 en la colección %s.",
	ErrDataShortRow:   "La fila %d del archivo de datos tiene menos de %d columnas y se omitió.",

	// CLI usage
	MsgUsage:          "Uso: instacode <comando> [argumentos]",
	MsgCommands:       "Comandos:",
	MsgCmdConvert:     "  convert   Convierte un archivo de instrucciones a C++",
	MsgCmdCheck:       "  check     Revisa las instrucciones sin escribir código",
	MsgCmdVersion:     "  version   Muestra la versión",
	MsgCmdHelp:        "  help      Muestra esta ayuda",
	MsgUseHelp:        "Use \"instacode <comando> -h\" para más información sobre un comando.",
	MsgUnknownCommand: "Comando desconocido: %s",
	MsgArguments:      "Argumentos:",
	MsgOptions:        "Opciones:",

	// Convert command
	MsgConvertUsage:       "Uso: instacode convert [opciones] <entrada>",
	MsgConvertDescription: "Convierte un archivo de instrucciones en español a un programa C++.",
	MsgConvertArgInput:    "  <entrada>   Archivo de instrucciones (.txt)",
	MsgOptOutput:          "Archivo de salida (por defecto: entrada con la extensión configurada)",
	MsgOptData:            "Archivo de datos auxiliar (CSV)",
	MsgOptVerbose:         "Muestra información detallada",
	MsgOptDump:            "Muestra la tabla de símbolos al terminar",
	MsgOptStdout:          "Escribe el código en la salida estándar",
	MsgConvertCompleted:   "Conversión completada: %s",

	// Check command
	MsgCheckUsage:       "Uso: instacode check [opciones] <entrada>",
	MsgCheckDescription: "Revisa un archivo de instrucciones e informa los problemas encontrados.",
	MsgCheckArgInput:    "  <entrada>   Archivo de instrucciones (.txt)",
	MsgCheckPassed:      "Sin problemas: %d instrucciones revisadas",

	// Common errors
	ErrInputRequired:     "Error: se requiere un archivo de entrada",
	ErrCannotAccessInput: "no se puede acceder a la entrada: %v",
	ErrCannotLoadConfig:  "no se puede cargar la configuración: %v",
	ErrCannotReadFile:    "no se puede leer el archivo",
	ErrCannotWriteFile:   "no se puede escribir el archivo",
	ErrConversionFailed:  "la conversión terminó con %d problema(s)",

	// Info messages
	MsgUsingConfig: "Usando configuración: %s",
	MsgNoConfig:    "No se encontró instacode.toml, usando valores por defecto",
	MsgUsingEnv:    "Variables de entorno cargadas desde %s",
	MsgSession:     "Sesión: %s",
	MsgConverting:  "Convirtiendo: %s -> %s",
	MsgIssue:       "[%s] línea %d: %s",
	MsgWarning:     "Advertencia: %s",
}
