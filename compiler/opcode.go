package compiler

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Opcode is one instruction of the stack machine.
//
// Stack effects are written [before] -> [after], top of stack rightmost.
// Operands follow the opcode in the stream; see operandKind.
type Opcode uint16

const (
	PUSH_SCOPE            Opcode = iota // opens a binding scope
	POP_SCOPE                           // closes the innermost binding scope
	POP                                 // [v] -> []
	STORE                               // name: [v] -> [v]; assigns, or initializes an uninitialized binding
	SAVE                                // [v] -> [v]; records the completion value
	DEF                                 // name: [v] -> []; declares name in the innermost scope
	LOAD                                // name: [] -> [v]
	INIT_ACCESSOR                       // [obj key v] -> [obj]; auto-accessor storage
	INIT_PRIVATE_ACCESSOR               // [obj name v] -> [obj]
	INIT_FIELD                          // [obj key v] -> [obj]; defines an own data property
	INIT_PRIVATE_FIELD                  // [obj name v] -> [obj]
	PUSH_UNDEFINED
	PUSH_NULL
	PUSH_NAN
	PUSH_INFINITY
	PUSH_UNINITIALIZED // value of a binding in its temporal dead zone
	PUSH_TRUE
	PUSH_FALSE
	PUSH_NUMBER // number
	PUSH_STRING // string
	PUSH_BIGINT // decimal digits as a string
	PUSH_REGEXP // pattern, flags
	PUSH_FUNCTION
	PUSH_CLASS
	PUSH_ASYNC_FUNCTION
	PUSH_LAMBDA // arrow functions keep the this of their creator
	PUSH_ASYNC_LAMBDA
	PUSH_GENERATOR
	PUSH_ASYNC_GENERATOR
	PUSH_OBJECT
	PUSH_ARRAY
	PUSH_THIS
	SUPER_CALL          // line, column: [args] -> [this]
	SUPER_MEMBER_CALL   // line, column: [key args] -> [result]
	GET_SUPER_FIELD     // [key] -> [v]
	SET_SUPER_FIELD     // [key v] -> [v]
	PUSH_VALUE          // n: copies the n-th value from the top, 1 being the top
	PUSH_BREAK_LABEL    // label, address: opens a break frame recording the stack and scope depth
	PUSH_CONTINUE_LABEL // label, address: opens a continue frame
	POP_LABEL           // closes the innermost label frame
	SET_CONST           // [v] -> [v]; the next DEF is const
	SET_USING           // [v] -> [v]; the next DEF is disposed at scope exit
	SET_AWAIT_USING
	SET_SOURCE         // source: [fn] -> [fn]
	SET_BIND           // [fn this] -> [fn]
	SET_CLASS          // [fn home] -> [fn]; the object super lookups start above
	SET_ADDRESS        // address: [fn] -> [fn]
	SET_NAME           // [fn name] -> [fn]
	SET_CLOSURE        // name: [fn] -> [fn]; captures the binding visible under name
	EXTENDS            // [class super] -> [class]
	DECORATOR          // kind: [key v decorator] -> [key v']
	DIRECTIVE          // text
	CALL               // line, column: [fn args] -> [result]
	EVAL               // line, column: [fn args] -> [result]; direct eval
	MEMBER_CALL        // line, column: [obj fn args] -> [result]
	GET_FIELD          // [obj key] -> [v]
	SET_FIELD          // [obj key v] -> [v]
	PRIVATE_CALL       // line, column: [obj name args] -> [result]
	GET_PRIVATE_FIELD  // [obj name] -> [v]
	SET_PRIVATE_FIELD  // [obj name v] -> [v]
	SET_GETTER         // [obj key fn] -> [obj]
	SET_SETTER         // [obj key fn] -> [obj]
	SET_METHOD         // [obj key fn] -> [obj]
	DEF_PRIVATE_GETTER // [obj name fn] -> [obj]
	DEF_PRIVATE_SETTER
	DEF_PRIVATE_METHOD
	JNULL      // address: [v] -> [v]; a nullish v becomes undefined and jumps
	JNOT_NULL  // address: [v] -> [v]; jumps unless v is nullish
	JFALSE     // address: [v] -> [v]; jumps if v is falsy
	JTRUE      // address: [v] -> [v]; jumps if v is truthy
	JMP        // address
	BREAK      // label: unwinds to the matching break frame, keeping it, and jumps to its address
	CONTINUE   // label: unwinds to the matching continue frame and jumps to it
	THROW      // [v] -> never
	TRY_BEGIN  // catch address, finally address, 0 when absent; a throw restores the stack and pushes the exception
	TRY_END    // closes the innermost try frame, running its finally block
	RET        // [v] -> returns v
	HLT        // ends the program
	KEYS       // [obj] -> [keys]; enumerable string keys for for-in
	AWAIT      // [v] -> [result]
	YIELD      // [v] -> [sent]
	NEXT       // [iter] -> [iter v done]
	AWAIT_NEXT // [iter] -> [iter v done]
	ITERATOR   // [iterable] -> [iter]
	ASYNC_ITERATOR
	REST        // [iter] -> [iter array]; drains the iterator
	REST_OBJECT // [obj keys] -> [obj keys copy]; copies properties not in keys
	IMPORT      // specifier: [] -> [namespace]
	ASSERT      // [namespace key value] -> [namespace]
	EXPORT      // name: [v] -> []
	EXPORT_ALL  // [namespace] -> []
	BREAKPOINT
	NEW // line, column: [ctor args] -> [obj]
	EQ  // binary operators: [a b] -> [a op b]
	NE
	SEQ
	GT
	LT
	GE
	LE
	SNE
	DEL    // [v] -> [true]
	TYPEOF // unary operators: [v] -> [op v]
	VOID
	INC
	DEC
	ADD
	SUB
	MUL
	DIV
	MOD
	POW
	NOT
	AND
	OR
	XOR
	SHR
	SHL
	USHR
	PLUS
	NEG
	LOGICAL_NOT
	CONCAT           // [a b] -> [a + String(b)]
	SPREAD           // [target iterable] -> [target]; appends to arrays, copies into objects
	IN               // [key obj] -> [bool]; a "#name" key tests a private brand
	INSTANCE_OF      // [v ctor] -> [bool]
	TAG              // line, column: [fn strings raws values] -> [result]
	MEMBER_TAG       // line, column: [obj fn strings raws values] -> [result]
	PRIVATE_TAG      // line, column: [obj name strings raws values] -> [result]
	SUPER_MEMBER_TAG // line, column: [key strings raws values] -> [result]
	DEL_FIELD        // [obj key] -> [bool]
	JNOT_UNDEFINED   // address: [v] -> [v]; jumps unless v is undefined
	DEFER_INC        // [v] -> [n+1 n] where n is ToNumeric(v)
	DEFER_DEC        // [v] -> [n-1 n]
	APPEND           // [array v] -> [array]
	INSERT           // n: moves the top value below the n values under it

	opcodeCount
)

// Decorator kinds carried by DECORATOR.
const (
	DecorateClass int32 = iota
	DecorateMethod
	DecorateGetter
	DecorateSetter
	DecorateField
	DecorateAccessor
)

type operandKind int

const (
	operandAddress operandKind = iota
	operandInteger
	operandNumber
	operandString
)

var opcodeNames = [...]string{
	PUSH_SCOPE:            "PUSH_SCOPE",
	POP_SCOPE:             "POP_SCOPE",
	POP:                   "POP",
	STORE:                 "STORE",
	SAVE:                  "SAVE",
	DEF:                   "DEF",
	LOAD:                  "LOAD",
	INIT_ACCESSOR:         "INIT_ACCESSOR",
	INIT_PRIVATE_ACCESSOR: "INIT_PRIVATE_ACCESSOR",
	INIT_FIELD:            "INIT_FIELD",
	INIT_PRIVATE_FIELD:    "INIT_PRIVATE_FIELD",
	PUSH_UNDEFINED:        "PUSH_UNDEFINED",
	PUSH_NULL:             "PUSH_NULL",
	PUSH_NAN:              "PUSH_NAN",
	PUSH_INFINITY:         "PUSH_INFINITY",
	PUSH_UNINITIALIZED:    "PUSH_UNINITIALIZED",
	PUSH_TRUE:             "PUSH_TRUE",
	PUSH_FALSE:            "PUSH_FALSE",
	PUSH_NUMBER:           "PUSH_NUMBER",
	PUSH_STRING:           "PUSH_STRING",
	PUSH_BIGINT:           "PUSH_BIGINT",
	PUSH_REGEXP:           "PUSH_REGEXP",
	PUSH_FUNCTION:         "PUSH_FUNCTION",
	PUSH_CLASS:            "PUSH_CLASS",
	PUSH_ASYNC_FUNCTION:   "PUSH_ASYNC_FUNCTION",
	PUSH_LAMBDA:           "PUSH_LAMBDA",
	PUSH_ASYNC_LAMBDA:     "PUSH_ASYNC_LAMBDA",
	PUSH_GENERATOR:        "PUSH_GENERATOR",
	PUSH_ASYNC_GENERATOR:  "PUSH_ASYNC_GENERATOR",
	PUSH_OBJECT:           "PUSH_OBJECT",
	PUSH_ARRAY:            "PUSH_ARRAY",
	PUSH_THIS:             "PUSH_THIS",
	SUPER_CALL:            "SUPER_CALL",
	SUPER_MEMBER_CALL:     "SUPER_MEMBER_CALL",
	GET_SUPER_FIELD:       "GET_SUPER_FIELD",
	SET_SUPER_FIELD:       "SET_SUPER_FIELD",
	PUSH_VALUE:            "PUSH_VALUE",
	PUSH_BREAK_LABEL:      "PUSH_BREAK_LABEL",
	PUSH_CONTINUE_LABEL:   "PUSH_CONTINUE_LABEL",
	POP_LABEL:             "POP_LABEL",
	SET_CONST:             "SET_CONST",
	SET_USING:             "SET_USING",
	SET_AWAIT_USING:       "SET_AWAIT_USING",
	SET_SOURCE:            "SET_SOURCE",
	SET_BIND:              "SET_BIND",
	SET_CLASS:             "SET_CLASS",
	SET_ADDRESS:           "SET_ADDRESS",
	SET_NAME:              "SET_NAME",
	SET_CLOSURE:           "SET_CLOSURE",
	EXTENDS:               "EXTENDS",
	DECORATOR:             "DECORATOR",
	DIRECTIVE:             "DIRECTIVE",
	CALL:                  "CALL",
	EVAL:                  "EVAL",
	MEMBER_CALL:           "MEMBER_CALL",
	GET_FIELD:             "GET_FIELD",
	SET_FIELD:             "SET_FIELD",
	PRIVATE_CALL:          "PRIVATE_CALL",
	GET_PRIVATE_FIELD:     "GET_PRIVATE_FIELD",
	SET_PRIVATE_FIELD:     "SET_PRIVATE_FIELD",
	SET_GETTER:            "SET_GETTER",
	SET_SETTER:            "SET_SETTER",
	SET_METHOD:            "SET_METHOD",
	DEF_PRIVATE_GETTER:    "DEF_PRIVATE_GETTER",
	DEF_PRIVATE_SETTER:    "DEF_PRIVATE_SETTER",
	DEF_PRIVATE_METHOD:    "DEF_PRIVATE_METHOD",
	JNULL:                 "JNULL",
	JNOT_NULL:             "JNOT_NULL",
	JFALSE:                "JFALSE",
	JTRUE:                 "JTRUE",
	JMP:                   "JMP",
	BREAK:                 "BREAK",
	CONTINUE:              "CONTINUE",
	THROW:                 "THROW",
	TRY_BEGIN:             "TRY_BEGIN",
	TRY_END:               "TRY_END",
	RET:                   "RET",
	HLT:                   "HLT",
	KEYS:                  "KEYS",
	AWAIT:                 "AWAIT",
	YIELD:                 "YIELD",
	NEXT:                  "NEXT",
	AWAIT_NEXT:            "AWAIT_NEXT",
	ITERATOR:              "ITERATOR",
	ASYNC_ITERATOR:        "ASYNC_ITERATOR",
	REST:                  "REST",
	REST_OBJECT:           "REST_OBJECT",
	IMPORT:                "IMPORT",
	ASSERT:                "ASSERT",
	EXPORT:                "EXPORT",
	EXPORT_ALL:            "EXPORT_ALL",
	BREAKPOINT:            "BREAKPOINT",
	NEW:                   "NEW",
	EQ:                    "EQ",
	NE:                    "NE",
	SEQ:                   "SEQ",
	GT:                    "GT",
	LT:                    "LT",
	GE:                    "GE",
	LE:                    "LE",
	SNE:                   "SNE",
	DEL:                   "DEL",
	TYPEOF:                "TYPEOF",
	VOID:                  "VOID",
	INC:                   "INC",
	DEC:                   "DEC",
	ADD:                   "ADD",
	SUB:                   "SUB",
	MUL:                   "MUL",
	DIV:                   "DIV",
	MOD:                   "MOD",
	POW:                   "POW",
	NOT:                   "NOT",
	AND:                   "AND",
	OR:                    "OR",
	XOR:                   "XOR",
	SHR:                   "SHR",
	SHL:                   "SHL",
	USHR:                  "USHR",
	PLUS:                  "PLUS",
	NEG:                   "NEG",
	LOGICAL_NOT:           "LOGICAL_NOT",
	CONCAT:                "CONCAT",
	SPREAD:                "SPREAD",
	IN:                    "IN",
	INSTANCE_OF:           "INSTANCE_OF",
	TAG:                   "TAG",
	MEMBER_TAG:            "MEMBER_TAG",
	PRIVATE_TAG:           "PRIVATE_TAG",
	SUPER_MEMBER_TAG:      "SUPER_MEMBER_TAG",
	DEL_FIELD:             "DEL_FIELD",
	JNOT_UNDEFINED:        "JNOT_UNDEFINED",
	DEFER_INC:             "DEFER_INC",
	DEFER_DEC:             "DEFER_DEC",
	APPEND:                "APPEND",
	INSERT:                "INSERT",
}

var lineColumn = []operandKind{operandInteger, operandInteger}

// operands lists the operand layout of every opcode that has one.
var operands = map[Opcode][]operandKind{
	STORE:               {operandString},
	DEF:                 {operandString},
	LOAD:                {operandString},
	PUSH_NUMBER:         {operandNumber},
	PUSH_STRING:         {operandString},
	PUSH_BIGINT:         {operandString},
	PUSH_REGEXP:         {operandString, operandString},
	SUPER_CALL:          lineColumn,
	SUPER_MEMBER_CALL:   lineColumn,
	PUSH_VALUE:          {operandInteger},
	PUSH_BREAK_LABEL:    {operandString, operandAddress},
	PUSH_CONTINUE_LABEL: {operandString, operandAddress},
	SET_SOURCE:          {operandString},
	SET_ADDRESS:         {operandAddress},
	SET_CLOSURE:         {operandString},
	DECORATOR:           {operandInteger},
	DIRECTIVE:           {operandString},
	CALL:                lineColumn,
	EVAL:                lineColumn,
	MEMBER_CALL:         lineColumn,
	PRIVATE_CALL:        lineColumn,
	JNULL:               {operandAddress},
	JNOT_NULL:           {operandAddress},
	JFALSE:              {operandAddress},
	JTRUE:               {operandAddress},
	JMP:                 {operandAddress},
	BREAK:               {operandString},
	CONTINUE:            {operandString},
	TRY_BEGIN:           {operandAddress, operandAddress},
	IMPORT:              {operandString},
	EXPORT:              {operandString},
	NEW:                 lineColumn,
	TAG:                 lineColumn,
	MEMBER_TAG:          lineColumn,
	PRIVATE_TAG:         lineColumn,
	SUPER_MEMBER_TAG:    lineColumn,
	JNOT_UNDEFINED:      {operandAddress},
	INSERT:              {operandInteger},
}

func (op Opcode) String() string {
	if op < opcodeCount {
		return opcodeNames[op]
	}
	return "UNKNOWN"
}

var opcodesByName map[string]Opcode

func init() {
	opcodesByName = make(map[string]Opcode, opcodeCount)
	for op := Opcode(0); op < opcodeCount; op++ {
		opcodesByName[opcodeNames[op]] = op
	}
}

// LookupOpcode maps a mnemonic back to its opcode.
func LookupOpcode(name string) (Opcode, bool) {
	op, ok := opcodesByName[name]
	return op, ok
}

// Mnemonics returns every opcode name in sorted order.
func Mnemonics() []string {
	names := maps.Keys(opcodesByName)
	slices.Sort(names)
	return names
}

// isJump reports whether op's first operand is a jump target.
func isJump(op Opcode) bool {
	switch op {
	case JMP, JTRUE, JFALSE, JNULL, JNOT_NULL, JNOT_UNDEFINED:
		return true
	}
	return false
}
