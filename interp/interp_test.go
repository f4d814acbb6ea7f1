package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func evalString(t *testing.T, src string) string {
	t.Helper()
	it := New()
	result, err := it.LoadString(src)
	require.NoError(t, err)
	return result.String()
}

func TestArithmeticAndFactorial(t *testing.T) {
	assert.Equal(t, "2432902008176640000", evalString(t, `
		(define (fact n) (if (= n 0) 1 (* n (fact (- n 1)))))
		(fact 20)
	`))
}

func TestDeepTailRecursionDoesNotOverflow(t *testing.T) {
	assert.Equal(t, "1000000", evalString(t, `
		(define (count-to n i) (if (= i n) i (count-to n (+ i 1))))
		(count-to 1000000 0)
	`))
}

func TestIntegerDivisionStaysExactRational(t *testing.T) {
	assert.Equal(t, "1/3", evalString(t, `(/ 1 3)`))
	assert.Equal(t, "2/1", evalString(t, `(/ 6 3)`))
}

func TestModuloAndRemainderSignRules(t *testing.T) {
	assert.Equal(t, "-2", evalString(t, `(remainder -7 5)`))
	assert.Equal(t, "3", evalString(t, `(modulo -7 5)`))
	assert.Equal(t, "-3", evalString(t, `(modulo 7 -5)`))
}

func TestCallCCEscapesEarly(t *testing.T) {
	assert.Equal(t, "5", evalString(t, `
		(+ 1 (call/cc (lambda (k) (+ 100 (k 4)))))
	`))
}

// TestCallCCReentersMultipleTimes captures a continuation once and
// invokes it from two later, independent top-level forms, checking
// that neither invocation exhausts it: each resumes the original
// "add one" computation and returns straight out of the later form,
// exactly the reentrant behavior a snapshot-copy-based continuation
// (rather than a one-shot escape) is supposed to provide.
func TestCallCCReentersMultipleTimes(t *testing.T) {
	it := New()
	_, err := it.LoadString(`(define saved #f)`)
	require.NoError(t, err)

	first, err := it.LoadString(`(+ 1 (call/cc (lambda (k) (set! saved k) 0)))`)
	require.NoError(t, err)
	assert.Equal(t, "1", first.String())

	second, err := it.LoadString(`(saved 10)`)
	require.NoError(t, err)
	assert.Equal(t, "11", second.String())

	third, err := it.LoadString(`(saved 20)`)
	require.NoError(t, err)
	assert.Equal(t, "21", third.String())
}

func TestQuasiquoteUnquoteSplicing(t *testing.T) {
	assert.Equal(t, "(1 2 3 4 5)", evalString(t, "`(1 ,@(list 2 3 4) 5)"))
}

func TestNamedLetAndLetStar(t *testing.T) {
	assert.Equal(t, "120", evalString(t, `
		(let loop ((n 5) (acc 1))
		  (if (= n 0) acc (loop (- n 1) (* acc n))))
	`))
	assert.Equal(t, "6", evalString(t, `
		(let* ((a 1) (b (+ a 1)) (c (+ b a))) (+ a b c))
	`))
}

func TestDoLoopBuildsVectorAndSumsList(t *testing.T) {
	assert.Equal(t, "#(0 1 2 3 4)", evalString(t, `
		(do ((v (make-vector 5)) (i 0 (+ i 1)))
		    ((= i 5) v)
		  (vector-set! v i i))
	`))
	assert.Equal(t, "25", evalString(t, `
		(do ((x '(1 3 5 7 9) (cdr x)) (sum 0 (+ sum (car x))))
		    ((null? x) sum))
	`))
}

func TestApplyMapForEach(t *testing.T) {
	assert.Equal(t, "6", evalString(t, `(apply + '(1 2 3))`))
	assert.Equal(t, "15", evalString(t, `((lambda v (apply + v)) 1 2 3 4 5)`))
	assert.Equal(t, "(11 22 33)", evalString(t, `(map + '(1 2 3) '(10 20 30))`))
	assert.Equal(t, "60", evalString(t, `
		(define total 0)
		(for-each (lambda (a b) (set! total (+ total (* a b)))) '(1 2 3) '(10 10 10))
		total
	`))
}

func TestMapMismatchedListLengthsIsError(t *testing.T) {
	it := New()
	_, err := it.LoadString(`(map + '(1 2 3) '(1 2))`)
	require.Error(t, err)
}

func TestForEachMismatchedListLengthsIsError(t *testing.T) {
	it := New()
	_, err := it.LoadString(`(for-each + '(1 2 3) '(1 2))`)
	require.Error(t, err)
}

func TestOrShortCircuitsBeforeDivideByZero(t *testing.T) {
	assert.Equal(t, "(b c)", evalString(t, `(or (memq 'b '(a b c)) (/ 3 0))`))
}

func TestDefineAndSetPersistAcrossForms(t *testing.T) {
	it := New()
	_, err := it.LoadString(`(define x 10)`)
	require.NoError(t, err)
	_, err = it.LoadString(`(set! x (+ x 5))`)
	require.NoError(t, err)
	result, err := it.LoadString(`x`)
	require.NoError(t, err)
	assert.Equal(t, "15", result.String())
}

func TestEqEqvIdentityLaws(t *testing.T) {
	assert.Equal(t, "#t", evalString(t, `(eq? 'a 'a)`))
	assert.Equal(t, "#t", evalString(t, `(eqv? 100000000000 100000000000)`))
	assert.Equal(t, "#f", evalString(t, `(eq? (gensym) (gensym))`))
}

func TestDelayForceMemoizes(t *testing.T) {
	assert.Equal(t, "1", evalString(t, `
		(define n 0)
		(define p (delay (begin (set! n (+ n 1)) n)))
		(force p)
		(force p)
	`))
}
