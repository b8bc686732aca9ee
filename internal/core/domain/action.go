package domain

import (
	"encoding/json"
	"fmt"
)

// ActionType tags a ResultAction variant.
type ActionType string

// All action variants.
const (
	ActionOpenFile        ActionType = "open_file"
	ActionLaunchApp       ActionType = "launch_app"
	ActionExecuteCommand  ActionType = "execute_command"
	ActionCopyToClipboard ActionType = "copy_to_clipboard"
	ActionOpenURL         ActionType = "open_url"
	ActionWebSearch       ActionType = "web_search"
)

// IsValid returns true if the action type is recognised.
func (t ActionType) IsValid() bool {
	switch t {
	case ActionOpenFile, ActionLaunchApp, ActionExecuteCommand,
		ActionCopyToClipboard, ActionOpenURL, ActionWebSearch:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (t ActionType) String() string {
	return string(t)
}

// ResultAction describes what executing a result does. It is a closed
// tagged union: exactly one variant's payload fields are meaningful,
// selected by Type. Construct values through the helper constructors so
// the payload always matches the tag.
//
// The JSON form is internally tagged: {"type":"open_file","path":"..."}.
// ExecuteCommand always carries an args array, even when empty.
type ResultAction struct {
	Type    ActionType `json:"type"`
	Path    string     `json:"path,omitempty"`
	Command string     `json:"command,omitempty"`
	Args    []string   `json:"args,omitempty"`
	Content string     `json:"content,omitempty"`
	URL     string     `json:"url,omitempty"`
	Query   string     `json:"query,omitempty"`
}

// OpenFileAction opens the file at path with the OS default handler.
func OpenFileAction(path string) ResultAction {
	return ResultAction{Type: ActionOpenFile, Path: path}
}

// LaunchAppAction launches the application at path.
func LaunchAppAction(path string) ResultAction {
	return ResultAction{Type: ActionLaunchApp, Path: path}
}

// ExecuteCommandAction runs command with args.
func ExecuteCommandAction(command string, args []string) ResultAction {
	if args == nil {
		args = []string{}
	}
	return ResultAction{Type: ActionExecuteCommand, Command: command, Args: args}
}

// CopyToClipboardAction places content on the clipboard.
func CopyToClipboardAction(content string) ResultAction {
	return ResultAction{Type: ActionCopyToClipboard, Content: content}
}

// OpenURLAction opens url in the default browser.
func OpenURLAction(url string) ResultAction {
	return ResultAction{Type: ActionOpenURL, URL: url}
}

// WebSearchAction searches the web for query.
func WebSearchAction(query string) ResultAction {
	return ResultAction{Type: ActionWebSearch, Query: query}
}

// MarshalJSON emits only the fields belonging to the tagged variant.
func (a ResultAction) MarshalJSON() ([]byte, error) {
	switch a.Type {
	case ActionOpenFile, ActionLaunchApp:
		return json.Marshal(struct {
			Type ActionType `json:"type"`
			Path string     `json:"path"`
		}{a.Type, a.Path})
	case ActionExecuteCommand:
		args := a.Args
		if args == nil {
			args = []string{}
		}
		return json.Marshal(struct {
			Type    ActionType `json:"type"`
			Command string     `json:"command"`
			Args    []string   `json:"args"`
		}{a.Type, a.Command, args})
	case ActionCopyToClipboard:
		return json.Marshal(struct {
			Type    ActionType `json:"type"`
			Content string     `json:"content"`
		}{a.Type, a.Content})
	case ActionOpenURL:
		return json.Marshal(struct {
			Type ActionType `json:"type"`
			URL  string     `json:"url"`
		}{a.Type, a.URL})
	case ActionWebSearch:
		return json.Marshal(struct {
			Type  ActionType `json:"type"`
			Query string     `json:"query"`
		}{a.Type, a.Query})
	default:
		return nil, fmt.Errorf("%w: action type %q", ErrInvalidInput, string(a.Type))
	}
}

// UnmarshalJSON decodes the tagged form, rejecting unknown tags.
func (a *ResultAction) UnmarshalJSON(data []byte) error {
	var raw struct {
		Type    ActionType `json:"type"`
		Path    string     `json:"path"`
		Command string     `json:"command"`
		Args    []string   `json:"args"`
		Content string     `json:"content"`
		URL     string     `json:"url"`
		Query   string     `json:"query"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if !raw.Type.IsValid() {
		return fmt.Errorf("%w: action type %q", ErrInvalidInput, string(raw.Type))
	}

	*a = ResultAction{Type: raw.Type}
	switch raw.Type {
	case ActionOpenFile, ActionLaunchApp:
		a.Path = raw.Path
	case ActionExecuteCommand:
		a.Command = raw.Command
		a.Args = raw.Args
		if a.Args == nil {
			a.Args = []string{}
		}
	case ActionCopyToClipboard:
		a.Content = raw.Content
	case ActionOpenURL:
		a.URL = raw.URL
	case ActionWebSearch:
		a.Query = raw.Query
	}
	return nil
}
