// Package sieve generates primes with the Sieve of Eratosthenes.
package sieve

import "math"

// minBound covers the first five primes, below the range where the
// n·(ln n + ln ln n) estimate holds.
const minBound = 15

// Generate returns the first count primes in ascending order.
func Generate(count int) []int {
	if count <= 0 {
		return []int{}
	}

	if count == 1 {
		return []int{2}
	}

	limit := upperBound(count)
	composite := make([]bool, limit+1)
	primes := make([]int, 0, count)

	for i := 2; i <= limit; i++ {
		if !composite[i] {
			primes = append(primes, i)
			markMultiples(composite, i)
		}

		if len(primes) >= count {
			break
		}
	}

	return primes[:min(count, len(primes))]
}

// CountBelow returns the number of primes p with 2 <= p <= limit.
func CountBelow(limit int) int {
	if limit < 2 {
		return 0
	}

	composite := make([]bool, limit+1)
	count := 0

	for i := 2; i <= limit; i++ {
		if !composite[i] {
			count++
			markMultiples(composite, i)
		}
	}

	return count
}

func markMultiples(composite []bool, p int) {
	for j := p * p; j < len(composite); j += p {
		composite[j] = true
	}
}

// upperBound returns a sieve limit guaranteed to contain the count-th
// prime, using p_n < n·(ln n + ln ln n) for n >= 6.
func upperBound(count int) int {
	if count < 6 {
		return minBound
	}

	n := float64(count)
	bound := int(math.Ceil(n * (math.Log(n) + math.Log(math.Log(n)))))

	return max(bound, minBound)
}
