// Package wellness provides small self-service health tools that sit next
// to the search engine: a BMI calculator and a rotating daily health tip.
package wellness
