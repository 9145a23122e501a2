package generator

const SampleControllerTemplate = `package {{.Package}}.controller;

import {{.Package}}.services.interfaces.SampleService;
{{- if .Config.BaseResponseEnabled}}
import {{.Package}}.models.dto.response.baseresponse.SuccessResponse;
{{- end}}
import lombok.RequiredArgsConstructor;
import org.springframework.http.ResponseEntity;
import org.springframework.web.bind.annotation.*;

@RestController
@RequestMapping("/api/sample")
@RequiredArgsConstructor
public class SampleController {

    private final SampleService sampleService;

    @GetMapping
    public ResponseEntity<?> getSample() {
{{- if .Config.BaseResponseEnabled}}
        return ResponseEntity.ok(SuccessResponse.of("Sample endpoint", "Hello from {{.Config.ApplicationName}}!"));
{{- else}}
        return ResponseEntity.ok("Hello from {{.Config.ApplicationName}}!");
{{- end}}
    }
}
`

const SampleServiceTemplate = `package {{.Package}}.services.interfaces;

public interface SampleService {
    String getSampleData();
}
`

const SampleServiceImplTemplate = `package {{.Package}}.services.implementations;

import {{.Package}}.services.interfaces.SampleService;
import lombok.RequiredArgsConstructor;
import org.springframework.stereotype.Service;

@Service
@RequiredArgsConstructor
public class SampleServiceImpl implements SampleService {

    @Override
    public String getSampleData() {
        return "Sample data from service";
    }
}
`

const WebConfigTemplate = `package {{.Package}}.configuration;

import org.springframework.context.annotation.Configuration;
import org.springframework.web.servlet.config.annotation.CorsRegistry;
import org.springframework.web.servlet.config.annotation.WebMvcConfigurer;

@Configuration
public class WebConfig implements WebMvcConfigurer {

    @Override
    public void addCorsMappings(CorsRegistry registry) {
        registry.addMapping("/**")
                .allowedOrigins("*")
                .allowedMethods("GET", "POST", "PUT", "DELETE", "PATCH")
                .allowedHeaders("*");
    }
}
`
