// Copyright (c) 2025 Beep Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package registry is the client SDK for the session store API.

# Operations

	sess, err := client.Save(ctx, token, eventCode, answers)
	sess, err := client.Lookup(ctx, token)
	stats, err := client.EventStats(ctx, eventCode, adminKey)

Save inserts a new row per call; there is no update. Lookup returns
ErrNotFound when the token matches nothing - callers branch on it with
errors.Is, since absence is an expected outcome. Everything else surfaces
as *StoreError with the failed operation and, when the server answered,
the status code and message. The client never retries.

# Construction

	client, err := registry.New("https://registry.example.com",
		registry.WithTimeout(5*time.Second))

or from BEEP_REGISTRY_URL / BEEP_REGISTRY_TIMEOUT / BEEP_DEBUG:

	client, err := registry.NewFromEnv()
*/
package registry
