/*
Package executor runs a single request draft and measures it.

# Overview

Engine.Execute is the request execution engine behind every mission:
  - Header lines are parsed best-effort (ParseHeaders); malformed lines are dropped
  - The method token is the draft's Method, unchanged
  - The response body is read in chunks and accumulated
  - Timing is split into connect-to-first-byte, transfer and total
  - Bytes are decoded lossily (DecodeBody) and JSON is re-indented (FormatBody)

# Timing

The phases are additive so a consumer can draw them as proportional bars:

	t0 ── request sent
	   │  ConnectToFirstByte
	   ├─ response head received
	   │  Transfer
	   └─ last body byte            Total = end - t0

Transfer and Total share the same end instant, so Total >= Transfer and
Total >= ConnectToFirstByte always hold.

# Error Handling

Only two failures end a mission:
  - ErrConnection: the request could not be built or no response head arrived
    (refused connection, DNS, TLS, timeout)
  - ErrStream: the body could not be read to the end; partial bytes are dropped

Both are wrapped, so callers match them with errors.Is. Header parsing and
body formatting never fail; they fall back to skipping the line or showing
the raw text.

# Example Usage

	engine := executor.New(executor.Options{Timeout: 10 * time.Second})

	tele, body, err := engine.Execute(ctx, types.RequestDraft{
		Method:     types.MethodPost,
		URL:        "https://api.example.com/users",
		Body:       `{"name": "Jane"}`,
		RawHeaders: "Content-Type: application/json",
	})
	if err != nil {
		return err
	}

	fmt.Println(tele.Status, telemetry.FormatDuration(tele.Total))
	fmt.Println(body)

# Thread Safety

An Engine is safe to share between goroutines. The underlying http.Client
and its connection pool are reused across missions.
*/
package executor
