package schema

import (
	"encoding/json"
	"testing"
)

func TestStringifyString(t *testing.T) {
	s := NewString("a plain prompt")
	if got := Stringify(s); got != "a plain prompt" {
		t.Errorf("expect raw string passthrough, got: %s", got)
	}
}

func TestStringifyStringPointer(t *testing.T) {
	s := NewString("Google")
	if got := Stringify(&s); got != "Google" {
		t.Errorf("expect pointer passthrough without quoting, got: %s", got)
	}
}

func TestStringifyStruct(t *testing.T) {
	in := NewInput("Who founded Google?")
	got := Stringify(in)
	var decoded Input
	if err := json.Unmarshal([]byte(got), &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.ChatMessage != in.ChatMessage {
		t.Errorf("chat_message mismatch, expect:%s, got:%s", in.ChatMessage, decoded.ChatMessage)
	}
}

func TestBaseAttachement(t *testing.T) {
	var b Base
	if b.Attachement() != nil {
		t.Error("expect nil attachement on zero Base")
	}
	b.SetAttachement(&Attachement{ImageURLs: []string{"https://example.com/a.png"}})
	if att := b.Attachement(); att == nil || len(att.ImageURLs) != 1 {
		t.Error("expect attachement to be set")
	}
}
