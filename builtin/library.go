package builtin

import (
	"bufio"
	"os"

	"github.com/rivet-scheme/rivet/environment"
	"github.com/rivet-scheme/rivet/parser"
	"github.com/rivet-scheme/rivet/value"
	"github.com/rivet-scheme/rivet/vm"
)

// Install populates env with every native procedure, then evaluates
// library, the small set of procedures more naturally expressed in
// Scheme itself (the c*r compositions and the assoc-list family),
// matching the original's own @Init hook that loads its LIBRARY string
// through the interpreter rather than hand-writing them as natives.
func Install(env *environment.Environment) {
	stdin := value.NewInputPort("stdin", bufio.NewReader(os.Stdin))
	stdout := value.NewOutputPort("stdout", os.Stdout)

	define := func(name string, fn value.BuiltinFunc) {
		env.Define(value.Intern(name), value.NewBuiltin(name, fn))
	}

	// Equivalence and boolean predicates.
	define("eq?", biEq)
	define("eqv?", biEqv)
	define("equal?", biEqual)
	define("not", biNot)
	define("boolean?", biIsBoolean)

	// Numeric tower.
	define("number?", biIsNumber)
	define("+", biAdd)
	define("*", biMultiply)
	define("-", biSubtract)
	define("/", biDivide)
	define(">", biGT)
	define(">=", biGE)
	define("<=", biLE)
	define("<", biLT)
	define("=", biNumEq)
	define("min", biMin)
	define("max", biMax)
	define("zero?", biIsZero)
	define("positive?", biIsPositive)
	define("negative?", biIsNegative)
	define("even?", biIsEven)
	define("odd?", biIsOdd)
	define("integer?", biIsInteger)
	define("rational?", biIsRational)
	define("real?", biIsReal)
	define("complex?", biIsComplex)
	define("exact?", biIsExact)
	define("inexact?", biIsInexact)
	define("sqrt", biSqrt)
	define("quotient", biQuotient)
	define("remainder", biRemainder)
	define("modulo", biModulo)
	define("gcd", biGCD)
	define("lcm", biLCM)
	define("abs", biAbs)
	define("string->number", biStringToNumber)
	define("number->string", biNumberToString)

	// Vectors.
	define("vector?", biIsVector)
	define("make-vector", biMakeVector)
	define("vector", biVector)
	define("vector-length", biVectorLength)
	define("vector-ref", biVectorRef)
	define("vector-set!", biVectorSet)
	define("vector->list", biVectorToList)
	define("list->vector", biListToVector)
	define("vector-fill!", biVectorFill)

	// Pairs and lists.
	define("null?", biIsNull)
	define("pair?", biIsPair)
	define("list?", biIsList)
	define("cons", biCons)
	define("car", biCar)
	define("cdr", biCdr)
	define("set-car!", biSetCar)
	define("set-cdr!", biSetCdr)
	define("length", biLength)
	define("list", biList)
	define("append", biAppend)
	define("reverse", biReverse)
	define("list-tail", biListTail)
	define("list-ref", biListRef)
	define("apply", biApply)
	define("map", biMap)
	define("for-each", biForEach)

	// Symbols.
	define("symbol?", biIsSymbol)
	define("string->symbol", biStringToSymbol)
	define("symbol->string", biSymbolToString)

	// Strings.
	define("string?", biIsString)
	define("make-string", biMakeString)
	define("string", biString)
	define("string-length", biStringLength)
	define("string-ref", biStringRef)
	define("string-set!", biStringSet)
	define("string=?", biStringEQ)
	define("string<?", biStringLT)
	define("string<=?", biStringLE)
	define("string>?", biStringGT)
	define("string>=?", biStringGE)
	define("string-ci=?", biStringCIEQ)
	define("string-ci<?", biStringCILT)
	define("string-ci<=?", biStringCILE)
	define("string-ci>?", biStringCIGT)
	define("string-ci>=?", biStringCIGE)
	define("substring", biSubstring)
	define("string-append", biStringAppend)
	define("string->list", biStringToList)
	define("list->string", biListToString)
	define("string-copy", biStringCopy)
	define("string-fill!", biStringFill)

	// Control.
	define("procedure?", biIsProcedure)
	define("char?", biIsChar)
	define("char=?", biCharEQ)
	define("char<?", biCharLT)
	define("char>?", biCharGT)
	define("char>=?", biCharGE)
	define("char<=?", biCharLE)
	define("char-ci=?", biCharCIEQ)
	define("char-ci<?", biCharCILT)
	define("char-ci>?", biCharCIGT)
	define("char-ci>=?", biCharCIGE)
	define("char-ci<=?", biCharCILE)
	define("char-alphabetic?", biCharIsAlphabetic)
	define("char-numeric?", biCharIsNumeric)
	define("char-whitespace?", biCharIsWhitespace)
	define("char-upper-case?", biCharIsUpperCase)
	define("char-lower-case?", biCharIsLowerCase)
	define("char->integer", biCharToInteger)
	define("integer->char", biIntegerToChar)
	define("char-upcase", biCharUpcase)
	define("char-downcase", biCharDowncase)
	define("force", biForce)
	define("gensym", biGensym)
	define("lookup", biLookup)
	define("eval", biEval)
	define("exit", biExit)
	define("error", biError)
	define("void", biVoid)
	define("void?", biIsVoid)

	// Ports.
	define("port?", biIsPort)
	define("input-port?", biIsInputPort)
	define("output-port?", biIsOutputPort)
	define("eof-object?", biIsEOFObject)
	define("eof", biEOF)
	define("current-input-port", makeCurrentPort(stdin))
	define("current-output-port", makeCurrentPort(stdout))
	define("display", makeDisplay(stdout))
	define("write", makeWrite(stdout))
	define("write-char", makeWriteChar(stdout))
	define("newline", makeNewline(stdout))

	loadLibrary(env)
}

// loadLibrary parses and evaluates library one top-level form at a time
// through the ordinary tokenizer/parser/vm pipeline, so the bootstrapped
// procedures are just as if the user had typed them in.
func loadLibrary(env *environment.Environment) {
	p := parser.New(library)
	for {
		expr, err := p.ReadExpression()
		if err != nil {
			panic("builtin library failed to parse: " + err.Error())
		}
		if expr.IsEof() {
			return
		}
		if _, err := vm.Eval(env, expr); err != nil {
			panic("builtin library failed to evaluate: " + err.Error())
		}
	}
}

// library provides the arbitrary car/cdr compositions (up to four deep,
// twenty-eight in all) and the memq/memv/member/assq/assv/assoc family,
// ported verbatim from the original's own LIBRARY bootstrap string.
const library = `
(define (caar x) (car (car x)))
(define (cadr x) (car (cdr x)))
(define (cdar x) (cdr (car x)))
(define (cddr x) (cdr (cdr x)))
(define (caaar x) (car (car (car x))))
(define (caadr x) (car (car (cdr x))))
(define (cadar x) (car (cdr (car x))))
(define (caddr x) (car (cdr (cdr x))))
(define (cdaar x) (cdr (car (car x))))
(define (cdadr x) (cdr (car (cdr x))))
(define (cddar x) (cdr (cdr (car x))))
(define (cdddr x) (cdr (cdr (cdr x))))
(define (caaaar x) (car (car (car (car x)))))
(define (caaadr x) (car (car (car (cdr x)))))
(define (caadar x) (car (car (cdr (car x)))))
(define (caaddr x) (car (car (cdr (cdr x)))))
(define (cadaar x) (car (cdr (car (car x)))))
(define (cadadr x) (car (cdr (car (cdr x)))))
(define (caddar x) (car (cdr (cdr (car x)))))
(define (cadddr x) (car (cdr (cdr (cdr x)))))
(define (cdaaar x) (cdr (car (car (car x)))))
(define (cdaadr x) (cdr (car (car (cdr x)))))
(define (cdadar x) (cdr (car (cdr (car x)))))
(define (cdaddr x) (cdr (car (cdr (cdr x)))))
(define (cddaar x) (cdr (cdr (car (car x)))))
(define (cddadr x) (cdr (cdr (car (cdr x)))))
(define (cdddar x) (cdr (cdr (cdr (car x)))))
(define (cddddr x) (cdr (cdr (cdr (cdr x)))))

(define (memq obj lst)
  (cond ((null? lst) #f)
        ((eq? obj (car lst)) lst)
        (else (memq obj (cdr lst)))))

(define (memv obj lst)
  (cond ((null? lst) #f)
        ((eqv? obj (car lst)) lst)
        (else (memv obj (cdr lst)))))

(define (member obj lst)
  (cond ((null? lst) #f)
        ((equal? obj (car lst)) lst)
        (else (member obj (cdr lst)))))

(define (assq obj lst)
  (cond ((null? lst) #f)
        ((eq? obj (caar lst)) (car lst))
        (else (assq obj (cdr lst)))))

(define (assv obj lst)
  (cond ((null? lst) #f)
        ((eqv? obj (caar lst)) (car lst))
        (else (assv obj (cdr lst)))))

(define (assoc obj lst)
  (cond ((null? lst) #f)
        ((equal? obj (caar lst)) (car lst))
        (else (assoc obj (cdr lst)))))
`
