/*Package log implements the logging for the bolt client

Logging is off by default. Set the level with SetLevel using one of
"trace", "info" or "error". Trace level logs every message exchange and
is very noisy, meant for debugging protocol issues only.
*/
package log
