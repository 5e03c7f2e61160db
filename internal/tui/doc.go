/*
Package tui implements the interactive terminal client.

# Architecture

Three goroutine domains talk only through channels:
  - Input: InputReader reads Screen.ReadEvent and feeds the input queue
  - Network: one goroutine per accepted submission runs the Executor and
    delivers a MissionCompleted or MissionFailed on the completion queue
  - Orchestration: Dispatcher owns the AppState. Every Step renders once,
    then applies one event from either queue

Both queues hold QueueCapacity events. A completion that arrives after the
dispatcher stopped is dropped.

# Key Components

  - state.go: AppState and its transitions (focus, tabs, scroll, submission)
  - keys.go: key routing through the keybinds registry
  - dispatcher.go: the event loop and mission launching
  - screen.go: bubbletea host; owns the terminal, never the state
  - render.go: lipgloss layout, response viewport and JSON highlighting
  - error_categorizer.go: hints for failed missions

# Key Routing

Global bindings are matched first (submit, focus, tabs, quit). Quit on "q"
is ignored while a mission is loading or the input area is focused, and
esc is ignored while loading; those keys then fall through. Next come the
focused pane's bindings, and last its text handling: the URL bar appends
printable runes and the input area forwards keys to the visible editor.

# Rendering

Frames are plain strings built on the dispatcher goroutine and handed to
Screen.Show, which keeps only the newest pending frame.
*/
package tui
