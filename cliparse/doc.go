// Copyright (c) 2025 Beep Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse parses server configuration from CLI flags with
environment variable fallback.

# Settings

  - PORT (-p): server port (default: 8787)
  - DATABASE_TYPE (-t): "sqlite" (default) or "postgres"
  - DATABASE_URL (-d): connection string, or sqlite file path
    (default: beep.db when type is sqlite)
  - ADMIN_KEY_SALT (--admin-salt): secret for event admin key HMAC
    (required)

CLI flags win over environment variables. A .env file, if present, is
loaded by main before parsing.
*/
package cliparse
