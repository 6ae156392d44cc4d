// Package main provides localization for the videobarcode CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Flag categories
		"Barcode":  "バーコード",
		"Decoding": "デコード",
		"Output":   "出力先",
		"Debug":    "デバッグ",
		"Logging":  "ログ",

		// Root command
		"Create a barcode image from evenly spaced video frames": "動画から等間隔に抽出したフレームでバーコード画像を作成",
		"Show help":                                              "ヘルプを表示",

		// Inspect command
		"Print backend, codec, frame count and dimensions of a video": "動画のバックエンド、コーデック、フレーム数、サイズを表示",
		"Source":                                                      "入力",
		"Backend":                                                     "バックエンド",
		"Codec":                                                       "コーデック",
		"Size":                                                        "サイズ",
		"FPS":                                                         "FPS",
		"Frames":                                                      "フレーム数",

		// Version command
		"Show version information": "バージョン情報を表示",
		"videobarcode version %s":  "videobarcode バージョン %s",

		// Barcode flags
		"Number of frames to sample (required)":                  "抽出するフレーム数（必須）",
		"Blur amount; a bare -b means 100":                       "ぼかし量。値を省略した -b は 100",
		"Width of each slice in pixels (default: 1)":             "各スライスの幅（ピクセル、デフォルト: 1）",
		"Height of each slice in pixels (default: video height)": "各スライスの高さ（ピクセル、デフォルト: 動画の高さ）",

		// Decoding flags
		"Decoding backend (auto, ffmpeg, vidio, mpeg, gocv)":                        "デコードバックエンド（auto, ffmpeg, vidio, mpeg, gocv）",
		"YAML file with default settings (default: ./videobarcode.yaml if present)": "デフォルト設定を記述したYAMLファイル（デフォルト: ./videobarcode.yaml があれば使用）",

		// Output flags
		"Write a run summary (Markdown, or YAML for .yaml/.yml)": "実行サマリーを出力（Markdown形式、.yaml/.ymlはYAML形式）",
		"Save slices and the sampling plan to this directory":    "スライスとサンプリング計画をこのディレクトリに保存",

		// Logging flags
		"Log level (debug, info, warn, error)": "ログレベル（debug, info, warn, error）",
		"Log format (console, structured)":     "ログ形式（console, structured）",
		"Suppress all log output":              "すべてのログ出力を抑制",
		"Disable the progress bar":             "プログレスバーを無効化",
	})
}
