package main

import (
	"encoding/json"
	"errors"
	"testing"

	"gopkg.in/yaml.v3"

	"cardgallery/internal/services"
)

const jpToken = "DarkMagician-SDY-JP-UR-AA.png | [[SDY-JP005]] ([[Ultra Rare]])<br>[[Starter Deck: Yugi]]"

func TestInspectPlainWhenNotTerminal(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env, "", "inspect", jpToken)
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	requireContains(t, out, "filename.name: DarkMagician\n")
	requireContains(t, out, "filename.alt: AA\n")
	requireContains(t, out, "filename.language: Japanese (日本語)\n")
	requireContains(t, out, "caption.number: SDY-JP005\n")
	requireContains(t, out, "output: SDY-JP005; Starter Deck: Yugi; UR; AA\n")
}

func TestInspectTable(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env, "", "inspect", "--format", "table", jpToken)
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	requireContains(t, out, "FIELD")
	requireContains(t, out, "VALUE")
	requireContains(t, out, "│ filename.set_code")
	requireContains(t, out, "SDY")
	requireContains(t, out, "╭")
}

func TestInspectJSON(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env, "", "inspect", "--format", "json", lobToken)
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	var view struct {
		Kind     string `json:"kind"`
		Output   string `json:"output"`
		Filename struct {
			Rarity    string `json:"rarity"`
			Extension string `json:"extension"`
			IsProxy   bool   `json:"is_proxy"`
		} `json:"filename"`
		Caption struct {
			Set         string `json:"set"`
			Description string `json:"description"`
		} `json:"caption"`
		Region struct {
			Code         string `json:"code"`
			LanguageName string `json:"language_name"`
		} `json:"region"`
	}
	if err := json.Unmarshal([]byte(out), &view); err != nil {
		t.Fatalf("decode json: %v\n%s", err, out)
	}
	if view.Kind != "card" || view.Output != lobOutput {
		t.Fatalf("unexpected view: %+v", view)
	}
	if view.Filename.Rarity != "R" || view.Filename.Extension != "jpg" || view.Filename.IsProxy {
		t.Fatalf("unexpected filename: %+v", view.Filename)
	}
	if view.Caption.Set != "Legend of Blue Eyes White Dragon" || view.Caption.Description != "Some card." {
		t.Fatalf("unexpected caption: %+v", view.Caption)
	}
	if view.Region.Code != "EN" || view.Region.LanguageName != "English" {
		t.Fatalf("unexpected region: %+v", view.Region)
	}
}

func TestInspectYAML(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env, "", "inspect", "--format", "yaml", proxyToken)
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	var view map[string]any
	if err := yaml.Unmarshal([]byte(out), &view); err != nil {
		t.Fatalf("decode yaml: %v\n%s", err, out)
	}
	if view["output"] != proxyOut || view["kind"] != "card" {
		t.Fatalf("unexpected yaml view: %v", view)
	}
	filename, ok := view["filename"].(map[string]any)
	if !ok {
		t.Fatalf("filename missing from yaml: %v", view)
	}
	if filename["is_proxy"] != true || filename["release"] != "OP" {
		t.Fatalf("unexpected filename: %v", filename)
	}
	if _, ok := filename["rarity"]; ok {
		t.Fatalf("proxy filename should omit rarity: %v", filename)
	}
}

func TestInspectErrors(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, env, "", "inspect", " | [[LOB-EN001]]")
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	_, _, err = runCLI(t, env, "", "inspect", "--format", "xml", lobToken)
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error for format, got %v", err)
	}
}
