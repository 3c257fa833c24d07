// Package arith holds the machine-word modular arithmetic shared by the
// p1list and gammah packages.
package arith

// MaxModulus bounds the moduli the tables are built for. Enumeration is
// quadratic in the modulus, and MaxModulus squared still fits a 32-bit int.
const MaxModulus = 1 << 14

// Mod returns a mod n in [0, n). n must be positive.
func Mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}

// GCD returns the non-negative greatest common divisor of a and b.
// GCD(0, 0) is 0.
func GCD(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// XGCD returns g = gcd(a, b) together with s, t such that s*a + t*b = g.
func XGCD(a, b int) (g, s, t int) {
	oldR, r := a, b
	oldS, s := 1, 0
	oldT, t := 0, 1
	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldS, s = s, oldS-q*s
		oldT, t = t, oldT-q*t
	}
	if oldR < 0 {
		return -oldR, -oldS, -oldT
	}
	return oldR, oldS, oldT
}

// Inverse returns the inverse of a modulo n and true, or 0 and false when
// a is not a unit. Every residue is a unit modulo 1, with inverse 0.
func Inverse(a, n int) (int, bool) {
	if n == 1 {
		return 0, true
	}
	g, s, _ := XGCD(Mod(a, n), n)
	if g != 1 {
		return 0, false
	}
	return Mod(s, n), true
}

// Divisors returns the positive divisors of n in increasing order.
func Divisors(n int) []int {
	var small, large []int
	for d := 1; d*d <= n; d++ {
		if n%d != 0 {
			continue
		}
		small = append(small, d)
		if d*d != n {
			large = append(large, n/d)
		}
	}
	for i := len(large) - 1; i >= 0; i-- {
		small = append(small, large[i])
	}
	return small
}

// PrimeDivisors returns the distinct primes dividing n, increasing.
func PrimeDivisors(n int) []int {
	var ps []int
	for p := 2; p*p <= n; p++ {
		if n%p != 0 {
			continue
		}
		ps = append(ps, p)
		for n%p == 0 {
			n /= p
		}
	}
	if n > 1 {
		ps = append(ps, n)
	}
	return ps
}

// Totient returns Euler's phi(n).
func Totient(n int) int {
	r := n
	for _, p := range PrimeDivisors(n) {
		r = r / p * (p - 1)
	}
	return r
}

// JordanTotient2 returns J_2(n) = n^2 * prod_{p|n} (1 - 1/p^2), the number
// of pairs (u, v) modulo n with gcd(u, v, n) = 1.
func JordanTotient2(n int) int {
	r := n * n
	for _, p := range PrimeDivisors(n) {
		r = r / (p * p) * (p*p - 1)
	}
	return r
}

// ProjectiveLineSize returns n * prod_{p|n} (1 + 1/p), the number of
// points of P^1(Z/nZ).
func ProjectiveLineSize(n int) int {
	r := n
	for _, p := range PrimeDivisors(n) {
		r = r / p * (p + 1)
	}
	return r
}
