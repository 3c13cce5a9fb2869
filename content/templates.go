package content

// defaultTemplates maps extensions to their starter bodies.
var defaultTemplates = map[string]string{
	".py": `#!/usr/bin/env python3
"""
{{.Filename}} - Auto-generated Python module
"""

def main():
    """Main function"""
    pass

if __name__ == "__main__":
    main()
`,
	".php": `<?php
/**
 * {{.Filename}} - Auto-generated PHP file
 */

// Add your PHP code here

?>
`,
	".js": `/**
 * {{.Filename}} - Auto-generated JavaScript file
 */

console.log("Hello from {{.Filename}}");
`,
	".css": `/* {{.Filename}} - Auto-generated CSS file */

body {
    font-family: Arial, sans-serif;
    margin: 0;
    padding: 20px;
}
`,
	".html": `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Name}}</title>
</head>
<body>
    <h1>{{.Name}}</h1>
    <p>Auto-generated HTML file</p>
</body>
</html>
`,
	".md": `# {{.Name}}

Auto-generated Markdown file.

## Description

This file was automatically created by treeforge.
`,
	".txt": `This is {{.Filename}} - Auto-generated text file.

You can add your content here.
`,
	".json": `{"name": "{{.Name}}", "description": "Auto-generated JSON file"}`,
	".htaccess": `# Auto-generated .htaccess file
RewriteEngine On
RewriteCond %{REQUEST_FILENAME} !-f
RewriteCond %{REQUEST_FILENAME} !-d
RewriteRule ^(.*)$ index.php [QSA,L]
`,
}

const fallbackTemplate = `# {{.Name}}

Auto-generated file: {{.Filename}}
`
