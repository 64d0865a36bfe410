package configuration

// ExampleConfig is the configuration template written by "dirdiff init".
const ExampleConfig = `# dirdiff - Configuration
# All settings for the directory comparison.

# Paths can be absolute or relative to this config file
original: ./project-original
modified: ./project-modified

output:
  # Generate an HTML report (false = terminal output only)
  html: false
  # Path to the HTML report (relative to config or absolute)
  html_path: ./diff-report.html

  # Colored terminal output
  color: true

  # Show content diffs (false = file list only)
  show_content: true

  # Context lines around each change
  context_lines: 3

  # Skip line diffing for files with more lines than this
  max_diff_lines: 10000

filter:
  # Directories to completely ignore
  ignore_dirs:
    - node_modules
    - .next
    - dist
    - build
    - .git
    - __pycache__
    - .cache
    - .turbo
    - target
    - out
    - .idea
    - .vscode

  # Files/patterns to ignore (glob syntax)
  ignore_files:
    # - "*.log"          # uncomment to ignore log files
    - ".DS_Store"
    - "Thumbs.db"
    - "*.pyc"

  # Only compare specific file types
  # Leave empty or comment out = all file types
  # extensions:
  #   - .ts
  #   - .tsx
  #   - .js
  #   - .jsx
  #   - .java
  #   - .css
`
