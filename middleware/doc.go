// Copyright (c) 2025 Beep Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides request logging, CORS, and JSON helpers.

WithLogging wraps a handler with structured start/finish logs. JSONResponse
and ErrorResponse write JSON bodies with the right Content-Type;
ParseJSONBody decodes a request body. CORS permits the browser client to
call the API cross-origin, including the X-Admin-Key header used by the
event dashboard.
*/
package middleware
