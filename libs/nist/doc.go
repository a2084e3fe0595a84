// Package nist fetches simulated LIBS line lists from the NIST Atomic
// Spectra Database.
//
// [Client] builds the lines1.pl query for a [plasma.Request] and returns the
// raw page, which carries the line list as a script payload. Use
// [Client.Provider] to plug it into a simulation. Requests carry a timeout
// and can be paced with [WithRateLimit]; there is no retry.
package nist
