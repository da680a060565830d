// Command stampdemo captures the current time as a timestamp.Timestamp,
// prints it, and reports through the shared logger.
//
//	stampdemo [--level info|error|fatal|debug] [--micros N] [--show-all]
package main
