package i18n

// Two fixed label sets for the step UI. The API serves whichever pack
// the front end asks for; nothing else about the service is localized.

const DefaultLanguage = "en"

var packs = map[string]map[string]string{
	"en": {
		"doctor":         "Doctor Name",
		"patient":        "Patient Name",
		"date":           "Date",
		"record":         "Record/Upload Audio",
		"file":           "Upload File",
		"text":           "Manual Input Text (Optional)",
		"next":           "Next Step",
		"transcript":     "Transcript",
		"summary":        "Summary",
		"edit":           "Edit Summary",
		"save":           "Save Summary",
		"download":       "Download Report",
		"new_chat":       "New Conversation",
		"history":        "History",
		"refresh":        "Refresh History",
		"step1":          "Basic Information",
		"step2":          "Upload Content",
		"step3":          "Generate Report",
		"processing":     "Processing...",
		"generating":     "Generating Summary...",
		"saving":         "Saving Record...",
		"report":         "Generating Report...",
		"complete":       "Complete!",
		"required":       "Please fill in all required fields",
		"input_required": "Please provide at least one input method (audio, file, or text)",
	},
	"zh": {
		"doctor":         "医生姓名",
		"patient":        "病人姓名",
		"date":           "日期",
		"record":         "录制/上传音频",
		"file":           "上传文件",
		"text":           "手动输入文本 (可选)",
		"next":           "下一步",
		"transcript":     "转录文本",
		"summary":        "总结",
		"edit":           "编辑总结",
		"save":           "保存总结",
		"download":       "下载报告",
		"new_chat":       "新对话",
		"history":        "历史记录",
		"refresh":        "刷新历史记录",
		"step1":          "基本信息",
		"step2":          "上传内容",
		"step3":          "生成报告",
		"processing":     "正在处理...",
		"generating":     "正在生成总结...",
		"saving":         "正在保存记录...",
		"report":         "正在生成报告...",
		"complete":       "完成！",
		"required":       "请填写所有必填字段",
		"input_required": "请至少提供一种输入方式（音频、文件或文本）",
	},
}

// Labels returns the pack for lang, falling back to English for
// anything unrecognized.
func Labels(lang string) map[string]string {
	if pack, ok := packs[lang]; ok {
		return pack
	}
	return packs[DefaultLanguage]
}

// Languages lists the supported language codes.
func Languages() []string {
	return []string{"en", "zh"}
}
