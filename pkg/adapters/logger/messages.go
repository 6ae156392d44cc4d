package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Orchestration level messages (info)
		"Starting visualization of %s":                                "%s の可視化を開始します",
		"Please wait ... %d out of %d total frames. Time elapsed: %s": "お待ちください ... %d / %d フレーム 経過時間: %s",
		"Applying blur...":                                            "ぼかしを適用中...",
		"Done.":                                                       "完了しました。",
		"Visualization saved to %s":                                   "可視化を %s に保存しました",
		"Summary written to %s":                                       "サマリーを %s に書き出しました",
		"Interrupted, shutting down...":                               "中断されました。シャットダウン中...",

		// Barcode builder
		"Opening %s":                                  "%s を開いています",
		"Sampling %d of %s frames every %.3f frames":  "%[2]s フレームから %[3].3f フレーム間隔で %[1]d フレームを抽出します",
		"Inferred slice height %d from frame %d":      "フレーム %[2]d からスライスの高さ %[1]d を推定しました",
		"Applying %dx%d blur kernel":                  "%dx%d のぼかしカーネルを適用中",
		"Encoding %dx%d barcode as %s":                "%dx%d のバーコードを %s でエンコード中",
		"Barcode written: %d bytes":                   "バーコードを書き出しました: %d バイト",

		// Video source
		"Using %s backend for %s":                          "%[2]s に %[1]s バックエンドを使用します",
		"Container reports %d frames, %s reported %.2f":    "コンテナのフレーム数は %d、%s の報告は %.2f です",
		"Container probe failed, using %s frame count: %s": "コンテナの解析に失敗しました。%s のフレーム数を使用します: %s",

		// Warnings
		"Failed to save debug output: %s": "デバッグ出力の保存に失敗しました: %s",
		"Failed to release video: %s":     "動画の解放に失敗しました: %s",
		"Failed to write summary: %s":     "サマリーの書き出しに失敗しました: %s",

		// Errors
		"Failed to write output: %s": "出力の書き込みに失敗しました: %s",
		"Error: %s":                  "エラー: %s",
	})
}
